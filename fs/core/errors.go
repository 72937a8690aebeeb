package core

import (
	"io/fs"
)

var (
	// ErrNotExist is returned when a backing file does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrPermission is returned when a mode forbids the operation.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed handle.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed
)
