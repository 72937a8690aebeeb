package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a StreamError.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var streamErr StreamError
	if stderrors.As(err, &streamErr) {
		return streamErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether err carries the given code.
//
// Example:
//
//	if errors.HasCode(err, errors.CodeIOState) {
//	    // stream closed or missing a mode flag
//	}
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}
