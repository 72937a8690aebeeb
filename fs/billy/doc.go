// Package billy opens go-billy files as in-memory streams.
//
// A file is loaded whole into a stringio.StringIO when it is opened. Every
// read, write, seek and line operation then runs against memory, and the
// content is stored back to the billy.Filesystem on Sync and Close when the
// file was opened with a writable mode.
//
// Usage:
//
//	// Create local filesystem rooted at dir
//	fs := billy.NewLocal(dir)
//
//	f, err := fs.OpenFile("notes.txt", "a+")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	_, err = f.Puts("appended line")
//
// # Memory Filesystem
//
// For testing or temporary storage, use the in-memory filesystem:
//
//	fs := billy.NewMemory()
//	f, err := fs.Create("temp.txt")
//
// Unwrap returns the underlying billy.Filesystem for callers that need
// direct access, such as go-git.
//
// # Thread Safety
//
// FS instances are safe for concurrent use when the underlying
// billy.Filesystem is. File handles are not safe for concurrent use, and two
// writable handles on the same path overwrite each other on Close.
package billy
