package errors

import "fmt"

// New creates a new StreamError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeIOState, "closed stream")
func New(code ErrorCode, message string) StreamError {
	return &streamError{
		code:    code,
		message: message,
	}
}

// Newf creates a new StreamError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidArgument, "negative length %d given", n)
func Newf(code ErrorCode, format string, args ...interface{}) StreamError {
	return &streamError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
