package priorlist

import (
	"fmt"

	"go-alloclist/pkg/arena"
)

// Handle refers to one element of a List; the zero Handle refers to none.
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
