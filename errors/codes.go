package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// Argument errors.

	// CodeInvalidArgument indicates an invalid mode string, a negative length,
	// a negative seek target, an invalid whence or a wrong argument count.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeTypeMismatch indicates an argument of an unexpected type was passed
	// to a variadic call shape.
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Stream state errors.

	// CodeIOState indicates the operation requires a mode flag the stream does
	// not carry, or the stream is closed.
	CodeIOState ErrorCode = "IO_ERROR"

	// CodeNotModifiable indicates a write against a frozen buffer.
	CodeNotModifiable ErrorCode = "NOT_MODIFIABLE"

	// CodeAccess indicates a writable mode was requested over frozen content.
	CodeAccess ErrorCode = "ACCESS_DENIED"

	// CodeUninitialized indicates the stream was never constructed or has
	// released its buffer.
	CodeUninitialized ErrorCode = "UNINITIALIZED_STREAM"

	// CodeEOF indicates a read that requires data hit the end of the stream.
	CodeEOF ErrorCode = "END_OF_FILE"

	// Storage errors.

	// CodeNotFound indicates a backing file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInternal indicates a failure of an underlying filesystem.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
