package errors

import "fmt"

// streamError is the concrete implementation of StreamError.
// It is private to enforce construction through package functions.
type streamError struct {
	code    ErrorCode
	op      string
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] op: message: cause", omitting absent parts.
func (e *streamError) Error() string {
	msg := e.message
	if e.op != "" {
		msg = e.op + ": " + msg
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, msg)
}

// Code returns the error code.
func (e *streamError) Code() ErrorCode {
	return e.code
}

// Op returns the failed operation name.
func (e *streamError) Op() string {
	return e.op
}

// Message returns the error message.
func (e *streamError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when empty.
func (e *streamError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *streamError) Unwrap() error {
	return e.cause
}

// clone returns a shallow copy with its own context map.
func (e *streamError) clone() *streamError {
	return &streamError{
		code:    e.code,
		op:      e.op,
		message: e.message,
		context: e.Context(),
		cause:   e.cause,
	}
}
