package stringio

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/store"
)

// StringIO is a file-like handle over a store.Buffer.
//
// The zero value is an uninitialized stream: every operation on it fails with
// errors.CodeUninitialized until it is attached to a buffer by ReopenFrom.
// The accessors that cannot fail (Pos, Lineno, Flags, Closed, Name, Buffer,
// Bytes and String) are exempt and report the zero state instead: position
// 0, line 0, no flags, closed, and a nil buffer.
type StringIO struct {
	buf    *store.Buffer
	pos    int64
	lineno int
	flags  Flag
	name   string
	logger *slog.Logger
}

// New returns a stream over buf. A nil buf gets a fresh empty buffer.
//
// buf is attached, not copied: writes through the stream are visible to the
// caller's buffer. Requesting a writable mode over a frozen buffer fails with
// errors.CodeAccess, and the "w" mode empties the buffer.
func New(buf *store.Buffer, opts ...Option) (*StringIO, error) {
	cfg := newConfig(opts)
	if buf == nil {
		buf = store.New(nil)
	}

	s := &StringIO{}
	s.configure(cfg)
	if err := s.init(buf, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// NewString returns a stream over a new buffer holding str.
func NewString(str string, opts ...Option) (*StringIO, error) {
	return New(store.NewString(str), opts...)
}

// NewBytes returns a stream over a new buffer holding a copy of b.
func NewBytes(b []byte, opts ...Option) (*StringIO, error) {
	return New(store.New(b), opts...)
}

// Open constructs a stream over buf, passes it to fn, then closes it (unless
// fn already did) and releases its buffer. The released stream is returned
// alongside the first error encountered.
func Open(buf *store.Buffer, fn func(*StringIO) error, opts ...Option) (s *StringIO, err error) {
	s, err = New(buf, opts...)
	if err != nil {
		return nil, err
	}

	defer func() {
		if !s.Closed() {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if rerr := s.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if fn != nil {
		err = fn(s)
	}
	return s, err
}

func (s *StringIO) configure(cfg *config) {
	if cfg.name != "" {
		s.name = cfg.name
	}
	if cfg.logger != nil {
		s.logger = cfg.logger
	}
}

// init runs construction against buf: it resolves the mode, applies
// truncation, attaches buf and resets the cursor.
func (s *StringIO) init(buf *store.Buffer, cfg *config) error {
	flags, err := resolveMode(cfg, buf.Frozen())
	if err != nil {
		return errors.WithOp(err, "initialize")
	}
	if flags.Has(Trunc) {
		if err := buf.Resize(0); err != nil {
			return errors.WithOp(err, "initialize")
		}
	}

	s.attach(buf)
	s.flags = flags
	s.pos = 0
	s.lineno = 0
	return nil
}

func resolveMode(cfg *config, frozen bool) (Flag, error) {
	if !cfg.modeSet {
		if frozen {
			return Readable, nil
		}
		return ReadWrite, nil
	}

	flags, err := ParseMode(cfg.mode)
	if err != nil {
		return 0, err
	}
	if frozen && flags.Has(Writable) {
		return 0, errors.WithContext(
			errors.Wrap(fs.ErrPermission, errors.CodeAccess, "writable mode over frozen content"),
			"mode", cfg.mode,
		)
	}
	return flags, nil
}

func (s *StringIO) log() *slog.Logger {
	if s.logger == nil {
		return discardLogger
	}
	return s.logger
}

// attach points the stream at buf, releasing any previous buffer.
func (s *StringIO) attach(buf *store.Buffer) {
	if s.buf == buf {
		return
	}
	s.detach()
	refs := buf.Retain()
	s.buf = buf
	s.log().Debug("buffer attached", "name", s.name, "refs", refs, "size", buf.Len())
}

// detach drops the stream's buffer reference, if any.
func (s *StringIO) detach() {
	if s.buf == nil {
		return
	}
	refs, err := s.buf.Release()
	if err != nil {
		s.log().Warn("buffer release failed", "name", s.name, "error", err)
	} else if refs == 0 {
		s.log().Debug("buffer released", "name", s.name)
	}
	s.buf = nil
}

// Guards. Each operation calls exactly one of these before touching the
// buffer or the cursor.

func (s *StringIO) checkInit(op string) error {
	if s.buf == nil {
		return errors.WithOp(errors.New(errors.CodeUninitialized, "uninitialized stream"), op)
	}
	return nil
}

func (s *StringIO) checkOpen(op string) error {
	if err := s.checkInit(op); err != nil {
		return err
	}
	if s.Closed() {
		return errClosed(op)
	}
	return nil
}

func (s *StringIO) checkReadable(op string) error {
	if err := s.checkInit(op); err != nil {
		return err
	}
	if !s.flags.Has(Readable) {
		return errors.WithOp(errors.New(errors.CodeIOState, "not opened for reading"), op)
	}
	return nil
}

func (s *StringIO) checkWritable(op string) error {
	if err := s.checkInit(op); err != nil {
		return err
	}
	if !s.flags.Has(Writable) {
		return errors.WithOp(errors.New(errors.CodeIOState, "not opened for writing"), op)
	}
	return nil
}

func errClosed(op string) error {
	return errors.WithOp(errors.Wrap(fs.ErrClosed, errors.CodeIOState, "closed stream"), op)
}

func errArgument(op, format string, args ...interface{}) error {
	return errors.WithOp(errors.Newf(errors.CodeInvalidArgument, format, args...), op)
}

// Buffer returns the backing buffer, or nil for an uninitialized stream.
func (s *StringIO) Buffer() *store.Buffer {
	return s.buf
}

// Bytes returns a copy of the backing content, or nil for an uninitialized
// stream.
func (s *StringIO) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// String returns the backing content as a string.
func (s *StringIO) String() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.String()
}

// Flags returns the current mode flags.
func (s *StringIO) Flags() Flag {
	return s.flags
}
