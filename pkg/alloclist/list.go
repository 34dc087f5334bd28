// Package alloclist implements a list that tracks the allocations made
// through it. Every region handed out is preceded by a small header linking
// it to the previous and next allocation, so freeing an element unlinks it in
// the same step and destroying the list releases everything still linked.
//
// Elements are ordered by allocation time: Index(0) and First are the oldest
// element, Last is the most recent one, until Sort relinks them.
package alloclist

import (
	"go-alloclist/pkg/arena"
	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

var lastListID = atomic.NewUint64(0)

type List struct {
	id        uint64
	provider  provider.Provider
	lock      locker.Locker
	log       *logrus.Entry
	slots     *arena.Arena
	count     int
	destroyed *atomic.Bool
}

// New creates an empty list. The list's root region is requested from the
// configured provider; if that fails no list is created.
func New(opts *Options) (*List, error) {
	o := opts.withDefaults()

	root, err := o.Provider.Alloc(HeaderSize)
	if err != nil {
		o.Logger.WithError(err).Warn("failed to allocate list root")
		return nil, errors.Wrap(err, "failed to allocate list root")
	}
	header{before: nilSlot, after: nilSlot}.writeTo(root)

	l := &List{
		id:        lastListID.Inc(),
		provider:  o.Provider,
		lock:      o.Locker,
		slots:     arena.New(root),
		destroyed: atomic.NewBool(false),
	}
	l.log = o.Logger.WithField("list", l.id)
	l.lock.Init()

	l.log.Debug("list created")
	return l, nil
}

// Destroy frees every element still linked and the list itself. Handles
// issued by the list must not be used afterwards. Destroying a destroyed or
// nil list does nothing.
func (l *List) Destroy() error {
	if l == nil || l.destroyed.Load() {
		return nil
	}

	l.lock.Lock()
	if l.destroyed.Load() {
		l.lock.Unlock()
		return nil
	}

	freed := 0
	for s := l.head(); s != nilSlot; freed++ {
		next := l.before(s)
		l.provider.Free(l.region(s))
		s = next
	}
	l.provider.Free(l.region(sentinel))
	l.slots.Reset()
	l.count = 0
	l.destroyed.Store(true)
	l.lock.Unlock()
	l.lock.Destroy()

	l.log.WithField("freed", freed).Debug("list destroyed")
	return nil
}

// Destroy destroys *lp and clears it, so destroying through the same pointer
// twice is a no-op.
func Destroy(lp **List) error {
	if lp == nil || *lp == nil {
		return nil
	}
	err := (*lp).Destroy()
	*lp = nil
	return err
}

// Count returns the number of elements in the list, or 0 for a nil or
// destroyed list.
func (l *List) Count() int {
	if err := l.enter(); err != nil {
		return 0
	}
	defer l.lock.Unlock()

	return l.count
}

// enter takes the list's lock. On success the caller must Unlock.
func (l *List) enter() error {
	if l == nil {
		return ErrNilList
	}
	if l.destroyed.Load() {
		return ErrDestroyed
	}

	l.lock.Lock()
	if l.destroyed.Load() {
		l.lock.Unlock()
		return ErrDestroyed
	}
	return nil
}
