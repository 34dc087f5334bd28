// Package arena keeps the regions of a tracked-allocation list in numbered
// slots. Slot numbers are what list headers link by; a Ref pairs a slot with
// the generation it was issued in, so references outliving their region are
// detected instead of aliasing whatever reuses the slot.
package arena

import (
	"errors"
	"fmt"
	"math"

	"go-alloclist/pkg/customerrors"
	"go-alloclist/util/stl"
)

// Nil is the slot number meaning "no slot".
const Nil uint32 = math.MaxUint32

// Root is the slot holding the owning list's own region. It is never handed
// out through a Ref.
const Root uint32 = 0

var ErrFull = errors.New("arena slot space exhausted")

type Ref struct {
	Slot uint32
	Gen  uint32
}

func (r Ref) Format(f fmt.State, c rune) {
	f.Write([]byte(fmt.Sprintf("{slot:'%v', gen:'%v'}", r.Slot, r.Gen)))
}

type slot struct {
	region []byte
	gen    uint32
	live   bool
}

type Arena struct {
	slots []slot
	free  stl.Stack[uint32]
}

// New creates an arena whose Root slot holds root.
func New(root []byte) *Arena {
	return &Arena{
		slots: []slot{{region: root, live: true}},
		free:  stl.NewStack[uint32](),
	}
}

// Acquire stores region in a free slot, reusing released slots first.
func (a *Arena) Acquire(region []byte) (Ref, error) {
	if idx, err := a.free.Pop(); err == nil {
		s := &a.slots[idx]
		s.region = region
		s.live = true
		return Ref{idx, s.gen}, nil
	}

	if uint64(len(a.slots)) >= uint64(Nil) {
		return Ref{}, ErrFull
	}
	a.slots = append(a.slots, slot{region: region, live: true})
	return Ref{uint32(len(a.slots) - 1), 0}, nil
}

// Release empties the slot and invalidates every Ref issued for it.
func (a *Arena) Release(idx uint32) {
	s := &a.slots[idx]
	s.region = nil
	s.live = false
	s.gen++
	a.free.Push(idx)
}

// Lookup returns the slot number of a live reference.
func (a *Arena) Lookup(r Ref) (uint32, error) {
	if r.Slot == Root || r.Slot >= uint32(len(a.slots)) {
		return Nil, customerrors.ErrStaleHandle
	}
	s := &a.slots[r.Slot]
	if !s.live || s.gen != r.Gen {
		return Nil, customerrors.ErrStaleHandle
	}
	return r.Slot, nil
}

// Region returns the region stored in slot idx without validation.
func (a *Arena) Region(idx uint32) []byte {
	return a.slots[idx].region
}

func (a *Arena) Ref(idx uint32) Ref {
	return Ref{idx, a.slots[idx].gen}
}

// Live is the number of occupied slots, Root included.
func (a *Arena) Live() int {
	return len(a.slots) - a.free.Size()
}

// Reset drops every slot, Root included. References issued before Reset are
// reported stale afterwards.
func (a *Arena) Reset() {
	a.slots = nil
	a.free.Reset()
}
