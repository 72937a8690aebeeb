package store

import "github.com/jmgilman/go/memio/errors"

// Retain records a new handle attached to the buffer and returns the new
// reference count. Retaining a released buffer revives it.
func (b *Buffer) Retain() int {
	b.refs++
	b.released = false
	return b.refs
}

// Release detaches one handle and returns the remaining reference count.
// When the count reaches zero the buffer is marked released.
func (b *Buffer) Release() (int, error) {
	if b.refs == 0 {
		return 0, errors.New(errors.CodeIOState, "buffer has no attached streams")
	}
	b.refs--
	if b.refs == 0 {
		b.released = true
	}
	return b.refs, nil
}

// RefCount returns the number of attached handles.
func (b *Buffer) RefCount() int {
	return b.refs
}

// Shared reports whether more than one handle is attached.
func (b *Buffer) Shared() bool {
	return b.refs > 1
}

// Released reports whether the last attached handle has detached.
func (b *Buffer) Released() bool {
	return b.released
}
