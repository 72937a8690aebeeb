package stringio

import (
	"io"

	"github.com/jmgilman/go/memio/search"
)

type sepKind int

const (
	sepLine sepKind = iota
	sepDelim
	sepParagraph
	sepNone
)

var newline = []byte("\n")

// Separator selects how Gets delimits chunks. The zero value is the newline
// separator.
type Separator struct {
	kind  sepKind
	delim []byte
}

var (
	// LineSeparator ends chunks after "\n".
	LineSeparator = Separator{kind: sepLine}

	// ParagraphSeparator ends chunks after a blank line, skipping leading
	// newlines first.
	ParagraphSeparator = Separator{kind: sepParagraph}

	// NoSeparator returns the whole remaining window as one chunk.
	NoSeparator = Separator{kind: sepNone}
)

// Sep returns a separator ending chunks after delim. An empty delim selects
// paragraph mode.
func Sep(delim string) Separator {
	if delim == "" {
		return ParagraphSeparator
	}
	return Separator{kind: sepDelim, delim: []byte(delim)}
}

func (sep Separator) bytes() []byte {
	if sep.kind == sepDelim {
		return sep.delim
	}
	return newline
}

// String returns the delimiter, "" for paragraph mode, or "<none>".
func (sep Separator) String() string {
	switch sep.kind {
	case sepParagraph:
		return ""
	case sepNone:
		return "<none>"
	default:
		return string(sep.bytes())
	}
}

// Gets returns the next chunk ending in "\n" (inclusive). The last chunk may
// lack the newline. It returns io.EOF when the position is at or past the end.
func (s *StringIO) Gets() ([]byte, error) {
	return s.gets(LineSeparator, 0)
}

// GetsSep is Gets with an explicit separator.
func (s *StringIO) GetsSep(sep Separator) ([]byte, error) {
	return s.gets(sep, 0)
}

// GetsLimit is Gets reading at most limit bytes. A zero limit returns an
// empty chunk without moving; a negative limit means no limit.
func (s *StringIO) GetsLimit(limit int) ([]byte, error) {
	if limit == 0 {
		if err := s.checkReadable("gets"); err != nil {
			return nil, err
		}
		return []byte{}, nil
	}
	return s.gets(LineSeparator, limit)
}

// GetsSepLimit is Gets with an explicit separator, reading at most limit
// bytes. A limit of zero or less means no limit.
func (s *StringIO) GetsSepLimit(sep Separator, limit int) ([]byte, error) {
	return s.gets(sep, limit)
}

// EachLine calls fn with every remaining chunk delimited by sep. It stops at
// the end of the stream or at the first error fn returns.
func (s *StringIO) EachLine(sep Separator, fn func(line []byte) error) error {
	for {
		line, err := s.gets(sep, 0)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// gets scans the window [pos, pos+limit) (or [pos, end) without a positive
// limit), advances past the chunk and counts it.
func (s *StringIO) gets(sep Separator, limit int) ([]byte, error) {
	if err := s.checkReadable("gets"); err != nil {
		return nil, err
	}

	size := s.buf.Len()
	if s.pos >= int64(size) {
		return nil, io.EOF
	}

	start := int(s.pos)
	end := size
	if limit > 0 && limit < size-start {
		end = start + limit
	}
	window := s.buf.Window(start, end)

	from, to := 0, len(window)
	switch sep.kind {
	case sepNone:
	case sepParagraph:
		var ok bool
		from, to, ok = search.Paragraph(window)
		if !ok {
			s.pos = int64(end)
			return nil, io.EOF
		}
	default:
		to = search.Line(window, sep.bytes())
	}

	line := s.buf.Slice(start+from, to-from)
	s.pos = int64(start + to)
	s.lineno++
	return line, nil
}
