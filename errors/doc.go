// Package errors provides the typed failures raised by memio streams.
//
// Every failure carries a string ErrorCode identifying its kind, the name of
// the stream operation that produced it, a human-readable message and optional
// context metadata. Errors remain compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap), so sentinel causes such as io.EOF or
// fs.ErrClosed stay reachable through the chain.
//
// # Error Kinds
//
//   - CodeInvalidArgument: invalid mode string, negative length or offset, bad whence
//   - CodeTypeMismatch: an argument of the wrong type at the call-shape boundary
//   - CodeIOState: missing mode flag, closed stream, double close
//   - CodeNotModifiable: mutation of a frozen buffer
//   - CodeAccess: writable mode requested over frozen content
//   - CodeUninitialized: operation on a stream that was never constructed
//   - CodeEOF: Sysread at end of stream
//
// # Quick Start
//
//	_, err := s.ReadN(-1)
//	if errors.HasCode(err, errors.CodeInvalidArgument) {
//	    // reject input
//	}
//
//	err := errors.New(errors.CodeIOState, "not opened for reading")
//	err = errors.WithOp(err, "read")
//	err = errors.WithContext(err, "pos", 12)
//
// Failures are deterministic functions of arguments and stream state. None of
// them are transient and nothing in this module retries them.
package errors
