// Package stringio provides StringIO, an in-memory, seekable, mutable byte
// stream that behaves like a file handle.
//
// A StringIO is a cursor over a store.Buffer. It tracks a position, a line
// counter and a set of mode flags, and offers positional reads and writes,
// separator-delimited reads (including paragraph mode) and io-compatible
// methods so it can stand in for a file anywhere an io.Reader, io.Writer,
// io.Seeker or core.File is expected.
//
// # Creating Streams
//
//	s, err := stringio.NewString("a\nb\nc")
//	line, err := s.Gets() // "a\n"
//
//	buf := store.NewString("")
//	w, err := stringio.New(buf, stringio.WithMode("w"))
//	w.WriteString("hello") // buf now holds "hello"
//
// Mode strings follow fopen: "r", "w" and "a", optionally followed by "+"
// (read-write) and "b" (binary, tracked but without effect). Without a mode a
// stream is read-write, or read-only when the buffer is frozen.
//
// # Aliasing
//
// Dup and ReopenFrom attach another handle to the same buffer. Writes through
// any handle are visible to all of them immediately, while each keeps its own
// position and line counter. Reopen replaces the shared content in place so
// every alias observes it.
//
// # End of Data
//
// Reads that find nothing to return report io.EOF. ReadAll is the exception:
// at the end of the stream it returns an empty slice and a nil error, while
// ReadN with a positive length returns io.EOF.
//
// # Errors
//
// Failures are typed errors from github.com/jmgilman/go/memio/errors. Use
// errors.GetCode or errors.HasCode to tell an argument error from a stream
// state error.
//
// # Thread Safety
//
// StringIO and store.Buffer are not safe for concurrent use.
package stringio
