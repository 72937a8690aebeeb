package stringio

import (
	"strings"

	"github.com/jmgilman/go/memio/errors"
)

// Flag is the mode bitset of a stream.
type Flag uint32

const (
	// Readable permits reads.
	Readable Flag = 0x0001
	// Writable permits writes.
	Writable Flag = 0x0002
	// ReadWrite permits both.
	ReadWrite = Readable | Writable
	// Binmode marks a binary stream. It has no effect on behavior.
	Binmode Flag = 0x0004
	// Append forces every write to the end of the buffer.
	Append Flag = 0x0040
	// Create is set by the "w" and "a" modes.
	Create Flag = 0x0080
	// Trunc empties the buffer when the stream is opened.
	Trunc Flag = 0x0800
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{Readable, "READABLE"},
	{Writable, "WRITABLE"},
	{Binmode, "BINMODE"},
	{Append, "APPEND"},
	{Create, "CREATE"},
	{Trunc, "TRUNC"},
}

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// String returns the set flag names joined by "|", or "CLOSED".
func (f Flag) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "CLOSED"
	}
	return strings.Join(names, "|")
}

// ParseMode converts an access mode string into flags.
func ParseMode(mode string) (Flag, error) {
	if mode == "" {
		return 0, invalidMode(mode)
	}

	var flags Flag
	switch mode[0] {
	case 'r':
		flags = Readable
	case 'w':
		flags = Writable | Create | Trunc
	case 'a':
		flags = Writable | Append | Create
	default:
		return 0, invalidMode(mode)
	}

	for _, c := range mode[1:] {
		switch c {
		case '+':
			flags |= ReadWrite
		case 'b':
			flags |= Binmode
		default:
			return 0, invalidMode(mode)
		}
	}
	return flags, nil
}

func invalidMode(mode string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidArgument, "invalid access mode %q", mode),
		"mode", mode,
	)
}
