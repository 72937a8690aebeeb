package stringio

import (
	"fmt"
	"math"

	"github.com/jmgilman/go/memio/errors"
)

// Variadic call shapes. Callers that receive loosely typed arguments (a
// scripting bridge, a command interpreter) resolve them once here; the stream
// methods only ever see typed parameters.

// GetsCall is a resolved Gets invocation.
type GetsCall struct {
	Sep   Separator
	Limit int

	// LimitOnly marks the single-integer form, where a zero limit returns an
	// empty chunk instead of meaning "no limit".
	LimitOnly bool
}

// ParseGetsArgs resolves gets-style arguments:
//
//	()                     newline separator
//	(sep)                  sep is a string, []byte, Separator, fmt.Stringer or nil (no separator)
//	(limit)                limit is an integer; newline separator
//	(sep, limit)           sep as above, limit an integer or nil (no limit)
func ParseGetsArgs(args ...any) (GetsCall, error) {
	switch len(args) {
	case 0:
		return GetsCall{Sep: LineSeparator}, nil
	case 1:
		if limit, ok, err := toInt(args[0]); ok {
			return GetsCall{Sep: LineSeparator, Limit: limit, LimitOnly: true}, err
		}
		sep, err := toSeparator(args[0])
		if err != nil {
			return GetsCall{}, err
		}
		return GetsCall{Sep: sep}, nil
	case 2:
		sep, err := toSeparator(args[0])
		if err != nil {
			return GetsCall{}, err
		}
		if args[1] == nil {
			return GetsCall{Sep: sep}, nil
		}
		limit, ok, err := toInt(args[1])
		if !ok {
			return GetsCall{}, typeMismatch("gets", args[1], "integer")
		}
		return GetsCall{Sep: sep, Limit: limit}, err
	default:
		return GetsCall{}, wrongArity("gets", len(args))
	}
}

// GetsWith runs a resolved Gets invocation.
func (s *StringIO) GetsWith(c GetsCall) ([]byte, error) {
	if c.LimitOnly {
		return s.GetsLimit(c.Limit)
	}
	return s.GetsSepLimit(c.Sep, c.Limit)
}

// ReadCall is a resolved read invocation.
type ReadCall struct {
	Length    int
	HasLength bool
	Dest      *[]byte
}

// ParseReadArgs resolves read-style arguments:
//
//	()                     read to the end
//	(length)               length is an integer or nil (read to the end)
//	(length, dest)         dest is a *[]byte or nil
func ParseReadArgs(args ...any) (ReadCall, error) {
	if len(args) > 2 {
		return ReadCall{}, wrongArity("read", len(args))
	}

	var c ReadCall
	if len(args) > 0 && args[0] != nil {
		n, ok, err := toInt(args[0])
		if !ok {
			return ReadCall{}, typeMismatch("read", args[0], "integer")
		}
		if err != nil {
			return ReadCall{}, err
		}
		c.Length, c.HasLength = n, true
	}
	if len(args) == 2 && args[1] != nil {
		dst, ok := args[1].(*[]byte)
		if !ok {
			return ReadCall{}, typeMismatch("read", args[1], "*[]byte")
		}
		c.Dest = dst
	}
	return c, nil
}

// ReadWith runs a resolved read invocation.
func (s *StringIO) ReadWith(c ReadCall) ([]byte, error) {
	return s.read("read", c.Length, c.HasLength, c.Dest)
}

func toSeparator(v any) (Separator, error) {
	switch t := v.(type) {
	case nil:
		return NoSeparator, nil
	case Separator:
		return t, nil
	case string:
		return Sep(t), nil
	case []byte:
		return Sep(string(t)), nil
	case fmt.Stringer:
		return Sep(t.String()), nil
	default:
		return Separator{}, typeMismatch("gets", v, "string")
	}
}

// toInt converts any integer type to int. ok reports whether v was an
// integer at all; err is set when it does not fit.
func toInt(v any) (n int, ok bool, err error) {
	var wide int64
	switch t := v.(type) {
	case int:
		return t, true, nil
	case int8:
		wide = int64(t)
	case int16:
		wide = int64(t)
	case int32:
		wide = int64(t)
	case int64:
		wide = t
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, true, errArgument("convert", "integer %d out of range", t)
		}
		wide = int64(t)
	case uint8:
		wide = int64(t)
	case uint16:
		wide = int64(t)
	case uint32:
		wide = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, true, errArgument("convert", "integer %d out of range", t)
		}
		wide = int64(t)
	default:
		return 0, false, nil
	}
	if wide > math.MaxInt || wide < math.MinInt {
		return 0, true, errArgument("convert", "integer %d out of range", wide)
	}
	return int(wide), true, nil
}

func typeMismatch(op string, v any, want string) error {
	err := errors.Newf(errors.CodeTypeMismatch, "no implicit conversion of %T into %s", v, want)
	return errors.WithOp(err, op)
}

func wrongArity(op string, got int) error {
	err := errors.Newf(errors.CodeInvalidArgument, "wrong number of arguments (%d for 0..2)", got)
	return errors.WithOp(err, op)
}
