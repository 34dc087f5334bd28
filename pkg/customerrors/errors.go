// Package customerrors defines errors shared by the tracked-allocation
// containers and their collaborators.
package customerrors

import (
	"errors"
)

var (
	// ErrNotFound is returned from navigation operations when there is no
	// element at the requested position (empty list, chain boundary, index
	// out of range).
	ErrNotFound = errors.New("not found")

	// ErrOutOfMemory is returned by providers that cannot satisfy an
	// allocation request.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrStaleHandle is returned when a handle refers to an element that was
	// already freed or relocated by a reallocation.
	ErrStaleHandle = errors.New("stale handle")

	// ErrForeignHandle is returned when a handle obtained from one list is
	// passed to another.
	ErrForeignHandle = errors.New("handle belongs to another list")

	// ErrDestroyed is returned by every operation on a destroyed list.
	ErrDestroyed = errors.New("list destroyed")

	ErrNilList = errors.New("nil list")
)
