package core

import (
	"io/fs"
	"path"
	"time"
)

// FileInfo describes an in-memory handle. It implements fs.FileInfo.
type FileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

// NewFileInfo returns a FileInfo for a regular in-memory file. Only the base
// of name is reported by Name, matching os.FileInfo.
func NewFileInfo(name string, size int64, mode fs.FileMode, modTime time.Time) *FileInfo {
	return &FileInfo{
		name:    path.Base(name),
		size:    size,
		mode:    mode &^ fs.ModeType,
		modTime: modTime,
	}
}

func (fi *FileInfo) Name() string       { return fi.name }
func (fi *FileInfo) Size() int64        { return fi.size }
func (fi *FileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *FileInfo) ModTime() time.Time { return fi.modTime }
func (fi *FileInfo) IsDir() bool        { return false }
func (fi *FileInfo) Sys() any           { return nil }

var _ fs.FileInfo = (*FileInfo)(nil)
