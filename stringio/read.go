package stringio

import (
	"io"

	"github.com/jmgilman/go/memio/errors"
)

// ReadAll returns everything from the current position to the end and moves
// the position to the end. At or past the end it returns an empty, non-nil
// slice and a nil error.
func (s *StringIO) ReadAll() ([]byte, error) {
	return s.read("read", 0, false, nil)
}

// ReadN returns up to n bytes from the current position and advances by the
// number returned. A negative n is an argument error. When n is positive and
// the position is at or past the end it returns io.EOF; ReadN(0) always
// returns an empty slice.
func (s *StringIO) ReadN(n int) ([]byte, error) {
	return s.read("read", n, true, nil)
}

// ReadAllInto is ReadAll writing into *dst, which is resized to the number of
// bytes read. The returned slice is *dst.
func (s *StringIO) ReadAllInto(dst *[]byte) ([]byte, error) {
	return s.read("read", 0, false, dst)
}

// ReadNInto is ReadN writing into *dst, which is resized to the number of
// bytes read (zero on io.EOF). The returned slice is *dst.
func (s *StringIO) ReadNInto(n int, dst *[]byte) ([]byte, error) {
	return s.read("read", n, true, dst)
}

// Sysread is ReadN, except that reading at the end of the stream fails with
// errors.CodeEOF. The error wraps io.EOF.
func (s *StringIO) Sysread(n int) ([]byte, error) {
	out, err := s.read("sysread", n, true, nil)
	if err == io.EOF {
		return nil, errors.WithOp(errors.Wrap(io.EOF, errors.CodeEOF, "end of file reached"), "sysread")
	}
	return out, err
}

// read is the shared body of every length-based read. limited distinguishes a
// call with an explicit length from one without, which decides between
// io.EOF and an empty result at the end of the stream.
func (s *StringIO) read(op string, n int, limited bool, dst *[]byte) ([]byte, error) {
	if err := s.checkReadable(op); err != nil {
		return nil, err
	}

	size := int64(s.buf.Len())
	if limited {
		if n < 0 {
			return nil, errors.WithContext(errArgument(op, "negative length %d given", n), "length", n)
		}
		if n > 0 && s.pos >= size {
			if dst != nil {
				*dst = (*dst)[:0]
			}
			return nil, io.EOF
		}
	} else {
		n = 0
		if s.pos < size {
			n = int(size - s.pos)
		}
	}

	var out []byte
	if dst == nil {
		out = s.buf.Slice(int(s.pos), n)
	} else {
		out = append((*dst)[:0], s.buf.Window(int(s.pos), int(s.pos)+n)...)
		if out == nil {
			out = []byte{}
		}
		*dst = out
	}
	s.pos += int64(len(out))
	return out, nil
}

// Read implements io.Reader. It returns io.EOF once the position is at or
// past the end.
func (s *StringIO) Read(p []byte) (int, error) {
	if err := s.checkReadable("read"); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	size := s.buf.Len()
	if s.pos >= int64(size) {
		return 0, io.EOF
	}
	n := copy(p, s.buf.Window(int(s.pos), size))
	s.pos += int64(n)
	return n, nil
}

// ReadAt implements io.ReaderAt. It does not move the position.
func (s *StringIO) ReadAt(p []byte, off int64) (int, error) {
	if err := s.checkReadable("read_at"); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, errors.WithContext(errArgument("read_at", "negative offset %d", off), "offset", off)
	}

	size := s.buf.Len()
	if off >= int64(size) {
		return 0, io.EOF
	}
	n := copy(p, s.buf.Window(int(off), size))
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Getc returns the byte at the current position and advances by one. It
// returns io.EOF at or past the end.
func (s *StringIO) Getc() (byte, error) {
	if err := s.checkReadable("getc"); err != nil {
		return 0, err
	}
	if s.pos >= int64(s.buf.Len()) {
		return 0, io.EOF
	}
	c := s.buf.At(int(s.pos))
	s.pos++
	return c, nil
}

// ReadByte implements io.ByteReader. It is equivalent to Getc.
func (s *StringIO) ReadByte() (byte, error) {
	return s.Getc()
}
