package stringio

import (
	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/store"
)

// Dup returns a new stream attached to the same buffer. The copy starts with
// this stream's flags, position and line counter, then moves independently.
func (s *StringIO) Dup() (*StringIO, error) {
	if err := s.checkInit("dup"); err != nil {
		return nil, err
	}

	d := &StringIO{
		pos:    s.pos,
		lineno: s.lineno,
		flags:  s.flags,
		name:   s.name,
		logger: s.logger,
	}
	d.attach(s.buf)
	return d, nil
}

// Reopen re-runs construction against the current buffer: its content is
// replaced in place by content (so aliases observe it), the mode is parsed
// again and the cursor is reset. A frozen buffer cannot be replaced; the
// stream then detaches from it and attaches to a fresh buffer instead.
func (s *StringIO) Reopen(content []byte, opts ...Option) error {
	if err := s.checkInit("reopen"); err != nil {
		return err
	}

	cfg := newConfig(opts)
	if _, err := resolveMode(cfg, false); err != nil {
		return errors.WithOp(err, "reopen")
	}
	s.configure(cfg)

	buf := s.buf
	if buf.Frozen() {
		buf = store.New(content)
	} else if err := buf.Replace(content); err != nil {
		return errors.WithOp(err, "reopen")
	}

	if err := s.init(buf, cfg); err != nil {
		return errors.WithOp(err, "reopen")
	}
	s.log().Debug("stream reopened", "name", s.name, "flags", s.flags.String(), "shared", buf.Shared())
	return nil
}

// ReopenFrom makes the stream an alias of other exactly as other.Dup would:
// same buffer, same flags, a copy of other's cursor. It also initializes a
// zero-value stream.
func (s *StringIO) ReopenFrom(other *StringIO) error {
	if other == nil {
		return errArgument("reopen", "nil stream")
	}
	if err := other.checkInit("reopen"); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = other.logger
	}

	s.attach(other.buf)
	s.flags = other.flags
	s.pos = other.pos
	s.lineno = other.lineno
	return nil
}

// Release detaches the stream from its buffer. The stream is left
// uninitialized and closed; the buffer is released once its last stream
// detaches.
func (s *StringIO) Release() error {
	if err := s.checkInit("release"); err != nil {
		return err
	}
	s.detach()
	s.flags = 0
	s.pos = 0
	s.lineno = 0
	return nil
}

// Closed reports whether the stream is neither readable nor writable.
func (s *StringIO) Closed() bool {
	return s.flags&ReadWrite == 0
}

// Close clears both the readable and writable flags. Closing a closed stream
// fails; the error wraps fs.ErrClosed.
func (s *StringIO) Close() error {
	if err := s.checkOpen("close"); err != nil {
		return err
	}
	s.flags &^= ReadWrite
	s.log().Debug("stream closed", "name", s.name)
	return nil
}

// CloseRead clears the readable flag.
func (s *StringIO) CloseRead() error {
	if err := s.checkInit("close_read"); err != nil {
		return err
	}
	if !s.flags.Has(Readable) {
		return errors.WithOp(errors.New(errors.CodeIOState, "closing non-duplex IO for reading"), "close_read")
	}
	s.flags &^= Readable
	return nil
}

// CloseWrite clears the writable flag.
func (s *StringIO) CloseWrite() error {
	if err := s.checkInit("close_write"); err != nil {
		return err
	}
	if !s.flags.Has(Writable) {
		return errors.WithOp(errors.New(errors.CodeIOState, "closing non-duplex IO for writing"), "close_write")
	}
	s.flags &^= Writable
	return nil
}
