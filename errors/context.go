package errors

import "errors"

// toStreamError converts err to a private *streamError, wrapping foreign
// errors with CodeUnknown.
func toStreamError(err error) *streamError {
	var se *streamError
	if errors.As(err, &se) {
		return se.clone()
	}
	return &streamError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}

// WithContext adds a single context field to an error.
// Returns a new StreamError; existing fields are preserved.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "whence", whence)
func WithContext(err error, key string, value interface{}) StreamError {
	if err == nil {
		return nil
	}
	se := toStreamError(err)
	if se.context == nil {
		se.context = make(map[string]interface{}, 1)
	}
	se.context[key] = value
	return se
}

// WithOp records the operation that produced the error.
// Returns nil if err is nil.
func WithOp(err error, op string) StreamError {
	if err == nil {
		return nil
	}
	se := toStreamError(err)
	se.op = op
	return se
}
