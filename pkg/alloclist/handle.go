package alloclist

import (
	"fmt"

	"go-alloclist/pkg/arena"
)

// Handle refers to one element of a List. Handles are only meaningful to the
// list that issued them and only until the element is freed, reallocated or
// the list is destroyed; after that every operation reports ErrStaleHandle.
//
// The zero Handle never refers to an element and is what navigation returns
// alongside ErrNotFound.
type Handle struct {
	list uint64
	ref  arena.Ref
}

func (h Handle) IsNil() bool {
	return h == Handle{}
}

func (h Handle) Format(f fmt.State, c rune) {
	if h.IsNil() {
		f.Write([]byte("<nil>"))
		return
	}
	f.Write([]byte(fmt.Sprintf("{list:'%v', ref:%v}", h.list, h.ref)))
}
