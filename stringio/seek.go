package stringio

import (
	"io"

	"github.com/jmgilman/go/memio/errors"
)

// Seek implements io.Seeker. whence is io.SeekStart, io.SeekCurrent or
// io.SeekEnd. The target may lie past the end of the buffer; a later write
// there zero-fills the gap. A nil error is the success signal; the returned
// offset is the new position.
func (s *StringIO) Seek(offset int64, whence int) (int64, error) {
	if err := s.checkOpen("seek"); err != nil {
		return 0, err
	}

	target := offset
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		target += s.pos
	case io.SeekEnd:
		target += int64(s.buf.Len())
	default:
		return 0, errors.WithContext(errArgument("seek", "invalid whence %d", whence), "whence", whence)
	}

	if target < 0 {
		err := errors.WithContext(errArgument("seek", "invalid seek target %d", target), "offset", offset)
		return 0, errors.WithContext(err, "whence", whence)
	}
	s.pos = target
	return target, nil
}

// Pos returns the current position.
func (s *StringIO) Pos() int64 {
	return s.pos
}

// SetPos moves the position. Negative positions are rejected.
func (s *StringIO) SetPos(pos int64) error {
	if err := s.checkInit("pos="); err != nil {
		return err
	}
	if pos < 0 {
		return errors.WithContext(errArgument("pos=", "negative position %d", pos), "pos", pos)
	}
	s.pos = pos
	return nil
}

// Lineno returns the number of chunks returned by the Gets family.
func (s *StringIO) Lineno() int {
	return s.lineno
}

// SetLineno overrides the line counter.
func (s *StringIO) SetLineno(n int) error {
	if err := s.checkInit("lineno="); err != nil {
		return err
	}
	s.lineno = n
	return nil
}

// Rewind resets the position and the line counter to zero.
func (s *StringIO) Rewind() error {
	if err := s.checkInit("rewind"); err != nil {
		return err
	}
	s.pos = 0
	s.lineno = 0
	return nil
}

// Size returns the buffer length.
func (s *StringIO) Size() (int64, error) {
	if err := s.checkInit("size"); err != nil {
		return 0, err
	}
	return int64(s.buf.Len()), nil
}

// EOF reports whether the position is at or past the end of the buffer.
func (s *StringIO) EOF() (bool, error) {
	if err := s.checkInit("eof"); err != nil {
		return false, err
	}
	return s.pos >= int64(s.buf.Len()), nil
}
