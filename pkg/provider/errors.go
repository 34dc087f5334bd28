package provider

import (
	"errors"

	"go-alloclist/pkg/customerrors"
)

var ErrOutOfMemory = customerrors.ErrOutOfMemory
var ErrNegativeSize = errors.New("negative allocation size")
