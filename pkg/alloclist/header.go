package alloclist

import (
	"encoding/binary"

	"go-alloclist/pkg/arena"
)

var bin = binary.BigEndian

// HeaderSize is the number of bytes every region carries in front of its
// payload. Each allocation requests HeaderSize + size bytes from the provider.
const HeaderSize = 8

const (
	nilSlot  = arena.Nil
	sentinel = arena.Root
)

// header links a region to its neighbours by slot number. before points
// towards older elements, after towards newer ones; the newest element's
// after is the sentinel. The sentinel's own before is the head of the list
// and its after is always nilSlot.
type header struct {
	before uint32
	after  uint32
}

func readHeader(region []byte) header {
	return header{
		before: bin.Uint32(region[0:4]),
		after:  bin.Uint32(region[4:8]),
	}
}

func (h header) writeTo(region []byte) {
	bin.PutUint32(region[0:4], h.before)
	bin.PutUint32(region[4:8], h.after)
}

func payloadOf(region []byte) []byte {
	return region[HeaderSize:]
}

func (l *List) region(s uint32) []byte {
	return l.slots.Region(s)
}

func (l *List) payload(s uint32) []byte {
	return payloadOf(l.region(s))
}

func (l *List) before(s uint32) uint32 {
	return bin.Uint32(l.region(s)[0:4])
}

func (l *List) after(s uint32) uint32 {
	return bin.Uint32(l.region(s)[4:8])
}

func (l *List) setBefore(s, v uint32) {
	bin.PutUint32(l.region(s)[0:4], v)
}

func (l *List) setAfter(s, v uint32) {
	bin.PutUint32(l.region(s)[4:8], v)
}

func (l *List) head() uint32 {
	return l.before(sentinel)
}

// nthBefore walks n steps towards older elements. n must be smaller than the
// number of elements older than s plus one.
func (l *List) nthBefore(s uint32, n int) uint32 {
	for ; n > 0; n-- {
		s = l.before(s)
	}
	return s
}

func (l *List) handleOf(s uint32) Handle {
	return Handle{list: l.id, ref: l.slots.Ref(s)}
}

// slotOf recovers the slot behind a handle issued by this list.
func (l *List) slotOf(h Handle) (uint32, error) {
	if h.IsNil() {
		return nilSlot, ErrNilHandle
	}
	if h.list != l.id {
		return nilSlot, ErrForeignHandle
	}
	return l.slots.Lookup(h.ref)
}
