package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/memio/errors"
	"github.com/jmgilman/go/memio/fs/core"
	"github.com/jmgilman/go/memio/stringio"
)

// File is a billy-backed file held in memory as a stringio.StringIO.
// Every stream operation is promoted from the embedded StringIO; Sync and
// Close also store the content when the file was opened writable.
type File struct {
	*stringio.StringIO

	fs      *FS
	persist bool
}

// Lock implements billy.File. The content is private to the handle, so
// locking is a no-op.
func (f *File) Lock() error {
	return nil
}

// Unlock implements billy.File.
func (f *File) Unlock() error {
	return nil
}

// Sync implements core.Syncer by storing the current content.
func (f *File) Sync() error {
	if err := f.StringIO.Sync(); err != nil {
		return err
	}
	if !f.persist {
		return nil
	}
	return f.flush("sync")
}

// Close stores the content (for writable files), then closes the stream and
// releases its buffer. If storing fails the file stays open, so Close or Sync
// can be retried. Closing a closed file fails.
func (f *File) Close() error {
	if f.Closed() {
		return f.StringIO.Close()
	}
	if f.persist {
		if err := f.flush("close"); err != nil {
			return err
		}
	}
	if err := f.StringIO.Close(); err != nil {
		return err
	}
	return f.StringIO.Release()
}

func (f *File) flush(op string) error {
	return errors.WithOp(f.fs.store(f.Name(), f.Bytes()), op)
}

// Compile-time interface checks.
var (
	_ billy.File     = (*File)(nil)
	_ core.Stream    = (*File)(nil)
	_ fs.File        = (*File)(nil)
	_ io.WriterAt    = (*File)(nil)
	_ core.Truncater = (*File)(nil)
)
