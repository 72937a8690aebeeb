package core

import (
	"io"
	"io/fs"
)

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File // Embeds: Read([]byte) (int, error), Close() error, Stat() (fs.FileInfo, error)

	// Write writes len(p) bytes from p to the underlying data stream.
	// It returns the number of bytes written from p (0 <= n <= len(p))
	// and any error encountered that caused the write to stop early.
	io.Writer

	// Name returns the name the handle was created with.
	// This is useful for debugging and error messages.
	Name() string
}

// Truncater allows truncating a file to a specified size.
//
// Truncate does not change the I/O offset. If the file is larger than size the
// extra data is discarded; if it is smaller it is extended with null bytes.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer allows syncing file contents to the handle's backing store.
// Handles without one implement Sync as a no-op.
type Syncer interface {
	Sync() error
}

// LineReader reads separator-delimited chunks and counts them.
type LineReader interface {
	// Gets returns the next newline-terminated chunk, including the newline.
	// The final chunk may lack one. It returns io.EOF when no data remains.
	Gets() ([]byte, error)

	// Getc returns the next byte, or io.EOF when no data remains.
	Getc() (byte, error)

	// Lineno returns the number of chunks Gets has returned since the last
	// rewind or explicit reset.
	Lineno() int
}

// Stream is a seekable, positionally addressable file handle with
// line-oriented reads.
type Stream interface {
	File
	io.Seeker
	io.ReaderAt
	io.WriterAt
	Truncater
	Syncer
	LineReader

	// Closed reports whether the handle can neither read nor write.
	Closed() bool
}
