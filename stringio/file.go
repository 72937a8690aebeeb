package stringio

import (
	"io"
	"io/fs"
	"time"

	"github.com/jmgilman/go/memio/fs/core"
)

// Name returns the name given with WithName.
func (s *StringIO) Name() string {
	return s.name
}

// Stat implements fs.File. The size is the buffer length and the permission
// bits reflect the current mode flags.
func (s *StringIO) Stat() (fs.FileInfo, error) {
	if err := s.checkInit("stat"); err != nil {
		return nil, err
	}

	var perm fs.FileMode
	if s.flags.Has(Readable) {
		perm |= 0444
	}
	if s.flags.Has(Writable) && !s.buf.Frozen() {
		perm |= 0222
	}
	return core.NewFileInfo(s.name, int64(s.buf.Len()), perm, time.Time{}), nil
}

// Sync implements core.Syncer. The buffer is the only storage, so Sync only
// checks that the stream is initialized.
func (s *StringIO) Sync() error {
	return s.checkInit("sync")
}

// Compile-time interface checks.
var (
	_ core.Stream     = (*StringIO)(nil)
	_ core.File       = (*StringIO)(nil)
	_ io.ByteReader   = (*StringIO)(nil)
	_ io.StringWriter = (*StringIO)(nil)
)
