package store

import (
	"io/fs"
	"math"

	"github.com/jmgilman/go/memio/errors"
)

// MaxLen is the largest content length a Buffer accepts. Growing past it is an
// argument error rather than an allocation failure.
const MaxLen = math.MaxInt32

// Buffer is a mutable, refcounted byte sequence.
// The zero value is an empty, unfrozen, unreferenced buffer ready for use.
type Buffer struct {
	data     []byte
	frozen   bool
	refs     int
	released bool
}

// New returns a buffer holding a copy of data.
func New(data []byte) *Buffer {
	b := &Buffer{}
	if len(data) > 0 {
		b.data = append(make([]byte, 0, len(data)), data...)
	}
	return b
}

// NewString returns a buffer holding the bytes of s.
func NewString(s string) *Buffer {
	return New([]byte(s))
}

// Len returns the content length.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// String returns the content as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// At returns the byte at index i. The caller must ensure 0 <= i < Len().
func (b *Buffer) At(i int) byte {
	return b.data[i]
}

// Slice returns a copy of at most n bytes starting at off, clipped to the
// content. Out of range offsets yield an empty slice.
func (b *Buffer) Slice(off, n int) []byte {
	start, end := b.clip(off, n)
	out := make([]byte, end-start)
	copy(out, b.data[start:end])
	return out
}

// Window returns a read-only view of [start, end) clipped to the content.
// The view aliases the buffer and is only valid until the next mutation;
// callers must not retain or modify it.
func (b *Buffer) Window(start, end int) []byte {
	s, e := b.clip(start, end-start)
	return b.data[s:e:e]
}

func (b *Buffer) clip(off, n int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > len(b.data) {
		off = len(b.data)
	}
	if n < 0 {
		n = 0
	}
	end := off + n
	if end > len(b.data) || end < off {
		end = len(b.data)
	}
	return off, end
}

// Frozen reports whether the buffer rejects mutation.
func (b *Buffer) Frozen() bool {
	return b.frozen
}

// Freeze makes the buffer permanently read-only.
func (b *Buffer) Freeze() *Buffer {
	b.frozen = true
	return b
}

// checkModifiable is the guard at the top of every mutating call.
func (b *Buffer) checkModifiable() error {
	if b.frozen {
		return errors.Wrap(fs.ErrPermission, errors.CodeNotModifiable, "can't modify frozen buffer")
	}
	return nil
}

// Resize grows the content to n bytes, zero-filling new bytes, or truncates
// it to n bytes.
func (b *Buffer) Resize(n int) error {
	if err := b.checkModifiable(); err != nil {
		return err
	}
	if n < 0 {
		return errors.Newf(errors.CodeInvalidArgument, "negative length %d", n)
	}
	if n > MaxLen {
		return errTooBig("length", int64(n))
	}
	if n <= len(b.data) {
		b.data = b.data[:n]
		return nil
	}
	b.grow(n)
	return nil
}

// Append adds p to the end of the content.
func (b *Buffer) Append(p []byte) error {
	if err := b.checkModifiable(); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

// Replace swaps the whole content for a copy of p.
func (b *Buffer) Replace(p []byte) error {
	if err := b.checkModifiable(); err != nil {
		return err
	}
	b.data = append(b.data[:0:0], p...)
	return nil
}

// WriteAt writes p at off, extending the content as needed. Any gap between
// the old end and off is zero-filled. It implements io.WriterAt.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if err := b.checkModifiable(); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, errors.Newf(errors.CodeInvalidArgument, "negative offset %d", off)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off > int64(MaxLen-len(p)) {
		return 0, errTooBig("offset", off)
	}

	pos := int(off)
	if pos == len(b.data) {
		b.data = append(b.data, p...)
		return len(p), nil
	}
	if end := pos + len(p); end > len(b.data) {
		b.grow(end)
	}
	copy(b.data[pos:], p)
	return len(p), nil
}

func errTooBig(key string, n int64) error {
	return errors.WithContext(errors.New(errors.CodeInvalidArgument, "string size too big"), key, n)
}

// grow extends the content to n bytes. Bytes past the old length are zeroed
// even when spare capacity holds stale data from an earlier truncation.
func (b *Buffer) grow(n int) {
	old := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
		clear(b.data[old:])
		return
	}
	c := 2 * cap(b.data)
	if c < n {
		c = n
	}
	data := make([]byte, n, c)
	copy(data, b.data)
	b.data = data
}
