package provider

import (
	"sync"

	"github.com/pkg/errors"
)

// Limited caps the total number of bytes outstanding through an underlying
// provider. Requests that would exceed the budget fail with ErrOutOfMemory.
type Limited struct {
	mu    sync.Mutex
	next  Provider
	limit uint64
	inUse uint64
}

func NewLimited(next Provider, limit uint64) *Limited {
	return &Limited{next: next, limit: limit}
}

func (l *Limited) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inUse+uint64(size) > l.limit {
		return nil, errors.Wrapf(ErrOutOfMemory, "request of %d bytes exceeds budget (%d of %d in use)", size, l.inUse, l.limit)
	}

	region, err := l.next.Alloc(size)
	if err != nil {
		return nil, err
	}
	l.inUse += uint64(len(region))
	return region, nil
}

func (l *Limited) Free(region []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inUse -= uint64(len(region))
	l.next.Free(region)
}

func (l *Limited) InUse() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}
