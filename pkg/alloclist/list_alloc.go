package alloclist

import (
	"math"

	"go-alloclist/util/helpers"

	"github.com/pkg/errors"
)

// MaxSize is the largest payload a single element can hold.
const MaxSize = math.MaxInt - HeaderSize

// Allocate requests a region for size bytes, links it as the most recent
// element and returns its handle and payload. The payload is zeroed if the
// provider returns zeroed memory.
func (l *List) Allocate(size int) (Handle, []byte, error) {
	if err := l.enter(); err != nil {
		return Handle{}, nil, err
	}
	defer l.lock.Unlock()

	if size < 0 || size > MaxSize {
		return Handle{}, nil, ErrInvalidSize
	}

	s, err := l.acquire(size)
	if err != nil {
		return Handle{}, nil, err
	}

	head := l.head()
	header{before: head, after: sentinel}.writeTo(l.region(s))
	if head != nilSlot {
		l.setAfter(head, s)
	}
	l.setBefore(sentinel, s)
	l.count++

	return l.handleOf(s), l.payload(s), nil
}

// Reallocate moves the element behind h into a region of size bytes, keeping
// its position in the list. The first min(old size, size) payload bytes are
// copied. h is stale once Reallocate succeeds; only the returned handle may be
// used. On failure h and its payload are left untouched.
func (l *List) Reallocate(h Handle, size int) (Handle, []byte, error) {
	if err := l.enter(); err != nil {
		return Handle{}, nil, err
	}
	defer l.lock.Unlock()

	old, err := l.slotOf(h)
	if err != nil {
		return Handle{}, nil, err
	}
	if size < 0 || size > MaxSize {
		return Handle{}, nil, ErrInvalidSize
	}

	s, err := l.acquire(size)
	if err != nil {
		return Handle{}, nil, err
	}

	oldRegion := l.region(old)
	oldPayload := payloadOf(oldRegion)
	copy(l.payload(s), oldPayload[:helpers.Min(len(oldPayload), size)])

	hdr := readHeader(oldRegion)
	hdr.writeTo(l.region(s))
	l.setBefore(hdr.after, s)
	if hdr.before != nilSlot {
		l.setAfter(hdr.before, s)
	}

	l.provider.Free(oldRegion)
	l.slots.Release(old)

	return l.handleOf(s), l.payload(s), nil
}

// Free unlinks the element behind h and returns its region to the provider.
func (l *List) Free(h Handle) error {
	if err := l.enter(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return err
	}

	region := l.region(s)
	hdr := readHeader(region)
	l.setBefore(hdr.after, hdr.before)
	if hdr.before != nilSlot {
		l.setAfter(hdr.before, hdr.after)
	}
	l.count--

	l.provider.Free(region)
	l.slots.Release(s)
	return nil
}

// Bytes returns the payload of the element behind h. The slice aliases list
// memory and is valid until the element is freed or reallocated.
func (l *List) Bytes(h Handle) ([]byte, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return nil, err
	}
	return l.payload(s), nil
}

// Size returns the payload length of the element behind h.
func (l *List) Size(h Handle) (int, error) {
	if err := l.enter(); err != nil {
		return 0, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return 0, err
	}
	return len(l.payload(s)), nil
}

// acquire obtains a region for a payload of size bytes and stores it in a
// slot. The region's header is left for the caller to write.
func (l *List) acquire(size int) (uint32, error) {
	region, err := l.provider.Alloc(HeaderSize + size)
	if err != nil {
		l.log.WithError(err).WithField("size", size).Warn("provider failed to allocate region")
		return nilSlot, errors.Wrap(err, "failed to allocate region")
	}

	ref, err := l.slots.Acquire(region)
	if err != nil {
		l.provider.Free(region)
		return nilSlot, errors.Wrap(err, "failed to track region")
	}
	return ref.Slot, nil
}
