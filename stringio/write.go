package stringio

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/store"
)

// Write implements io.Writer.
//
// In append mode the position first moves to the end of the buffer. Writing
// at the end appends; writing elsewhere overwrites in place, zero-filling any
// gap between the old end and the position. The position advances by len(p).
// A stream without the writable flag fails even for empty input, and a frozen
// buffer fails with errors.CodeNotModifiable.
func (s *StringIO) Write(p []byte) (int, error) {
	return s.write("write", p)
}

// WriteString implements io.StringWriter.
func (s *StringIO) WriteString(str string) (int, error) {
	return s.write("write", []byte(str))
}

// WriteValue writes the text form of v: strings and byte slices as-is,
// fmt.Stringer and error values through their methods, nil as nothing and
// anything else through fmt.Sprint.
func (s *StringIO) WriteValue(v any) (int, error) {
	return s.write("write", []byte(text(v)))
}

// Print writes the text form of each argument with no separators and returns
// the total number of bytes written.
func (s *StringIO) Print(args ...any) (int, error) {
	total := 0
	for _, arg := range args {
		n, err := s.write("print", []byte(text(arg)))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Puts writes the text form of each argument followed by a newline unless it
// already ends with one. With no arguments it writes a single newline.
func (s *StringIO) Puts(args ...any) (int, error) {
	if len(args) == 0 {
		return s.write("puts", newline)
	}

	total := 0
	for _, arg := range args {
		line := text(arg)
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		n, err := s.write("puts", []byte(line))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (s *StringIO) write(op string, p []byte) (int, error) {
	if err := s.checkWritable(op); err != nil {
		return 0, err
	}
	if s.buf.Frozen() {
		return 0, errors.WithOp(errors.Wrap(fs.ErrPermission, errors.CodeNotModifiable, "can't modify frozen buffer"), op)
	}
	if len(p) == 0 {
		return 0, nil
	}

	if s.flags.Has(Append) {
		s.pos = int64(s.buf.Len())
	}
	n, err := s.buf.WriteAt(p, s.pos)
	if err != nil {
		return n, errors.WithOp(err, op)
	}
	s.pos += int64(n)
	return n, nil
}

// WriteAt implements io.WriterAt. It follows the same extension rules as
// Write without moving the position, and is rejected in append mode.
func (s *StringIO) WriteAt(p []byte, off int64) (int, error) {
	if err := s.checkWritable("write_at"); err != nil {
		return 0, err
	}
	if s.flags.Has(Append) {
		return 0, errors.WithOp(errors.New(errors.CodeIOState, "positional write in append mode"), "write_at")
	}
	if off < 0 {
		return 0, errors.WithContext(errArgument("write_at", "negative offset %d", off), "offset", off)
	}
	n, err := s.buf.WriteAt(p, off)
	if err != nil {
		return n, errors.WithOp(err, "write_at")
	}
	return n, nil
}

// Truncate implements core.Truncater. It resizes the buffer to size,
// zero-filling on growth, and leaves the position alone.
func (s *StringIO) Truncate(size int64) error {
	if err := s.checkWritable("truncate"); err != nil {
		return err
	}
	if size < 0 {
		return errors.WithContext(errArgument("truncate", "negative length %d given", size), "length", size)
	}
	if size > store.MaxLen {
		return errors.WithContext(errArgument("truncate", "string size too big"), "length", size)
	}
	if err := s.buf.Resize(int(size)); err != nil {
		return errors.WithOp(err, "truncate")
	}
	return nil
}

// text coerces v to the bytes Write should receive.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}
