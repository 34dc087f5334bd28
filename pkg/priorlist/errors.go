package priorlist

import (
	"errors"

	"go-alloclist/pkg/customerrors"
)

var (
	ErrNotFound      = customerrors.ErrNotFound
	ErrOutOfMemory   = customerrors.ErrOutOfMemory
	ErrStaleHandle   = customerrors.ErrStaleHandle
	ErrForeignHandle = customerrors.ErrForeignHandle
	ErrDestroyed     = customerrors.ErrDestroyed
	ErrNilList       = customerrors.ErrNilList
)

var ErrNilHandle = errors.New("nil handle")
var ErrInvalidSize = errors.New("invalid allocation size")
