// Package core defines the file contracts that memio streams satisfy.
//
// Streams live entirely in memory but present themselves as file handles so
// they can be passed to code written against io/fs and io. This package holds
// only interfaces, the sentinel errors streams wrap, and a FileInfo
// implementation for handles that have no backing file.
//
// # Interface Hierarchy
//
//   - File: fs.File plus io.Writer and Name
//   - Truncater, Syncer: optional capabilities discovered by type assertion
//   - LineReader: line-oriented reads with a line counter
//   - Stream: every capability above plus io.Seeker, io.ReaderAt and io.WriterAt
//
// # Checking Optional Capabilities
//
//	if t, ok := file.(core.Truncater); ok {
//	    err := t.Truncate(0)
//	}
//
// Implementations are provided by github.com/jmgilman/go/memio/stringio and
// adapted to go-billy by github.com/jmgilman/go/memio/fs/billy.
package core
