// Package store provides Buffer, the growable byte sequence that backs one or
// more memio streams.
//
// A Buffer tracks three things: its content, whether it is frozen, and how
// many stream handles are attached to it. Handles that share a Buffer observe
// each other's writes immediately; there is no copy-on-write split.
//
// Offsets handed to a Buffer are plain integers. Mutations never invalidate an
// offset held by a caller, they only change what it refers to, so handles
// re-validate their cursor on every call.
//
// Buffers are not safe for concurrent use.
package store
