package errors

// StreamError extends the standard error interface with structured information
// about a failed stream operation.
type StreamError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Op returns the stream operation that failed (e.g. "read", "seek").
	// Returns an empty string when no operation was attached.
	Op() string

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
