package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error in the chain. Returns nil if err is nil.
//
// Example:
//
//	data, err := util.ReadFile(bfs, name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeInternal, "failed to load stream")
//	}
func Wrap(err error, code ErrorCode, message string) StreamError {
	if err == nil {
		return nil
	}
	return &streamError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) StreamError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
