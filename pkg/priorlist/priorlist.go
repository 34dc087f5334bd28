// Package priorlist is the singly linked counterpart of alloclist: every
// region's header only records the allocation made before it. Allocation and
// Last are O(1); freeing searches the chain from the most recent element.
package priorlist

import (
	"encoding/binary"
	"math"

	"go-alloclist/pkg/arena"
	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

var bin = binary.BigEndian

// HeaderSize is the per-region overhead in front of each payload.
const HeaderSize = 4

// MaxSize is the largest payload a single element can hold.
const MaxSize = math.MaxInt - HeaderSize

const (
	nilSlot = arena.Nil
	root    = arena.Root
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

// New creates an empty list whose root region comes from the configured
// provider.
func New(opts *Options) (*List, error) {
	o := opts.withDefaults()

	region, err := o.Provider.Alloc(HeaderSize)
	if err != nil {
		o.Logger.WithError(err).Warn("failed to allocate list root")
		return nil, errors.Wrap(err, "failed to allocate list root")
	}
	bin.PutUint32(region, nilSlot)

	l := &List{
		id:        lastListID.Inc(),
		provider:  o.Provider,
		lock:      o.Locker,
		slots:     arena.New(region),
		destroyed: atomic.NewBool(false),
	}
	l.log = o.Logger.WithField("list", l.id)
	l.lock.Init()

	l.log.Debug("list created")
	return l, nil
}

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
	for s := l.prior(root); s != nilSlot; freed++ {
		next := l.prior(s)
		l.provider.Free(l.slots.Region(s))
		s = next
	}
	l.provider.Free(l.slots.Region(root))
	l.slots.Reset()
	l.count = 0
	l.destroyed.Store(true)
	l.lock.Unlock()
	l.lock.Destroy()

	l.log.WithField("freed", freed).Debug("list destroyed")
	return nil
}

// Destroy destroys *lp and sets it to nil.
func Destroy(lp **List) error {
	if lp == nil || *lp == nil {
		return nil
	}
	err := (*lp).Destroy()
	*lp = nil
	return err
}

// Allocate links a new region of size payload bytes as the most recent
// element.
func (l *List) Allocate(size int) (Handle, []byte, error) {
	if err := l.enter(); err != nil {
		return Handle{}, nil, err
	}
	defer l.lock.Unlock()

	if size < 0 || size > MaxSize {
		return Handle{}, nil, ErrInvalidSize
	}

	region, err := l.provider.Alloc(HeaderSize + size)
	if err != nil {
		l.log.WithError(err).WithField("size", size).Warn("provider failed to allocate region")
		return Handle{}, nil, errors.Wrap(err, "failed to allocate region")
	}
	ref, err := l.slots.Acquire(region)
	if err != nil {
		l.provider.Free(region)
		return Handle{}, nil, errors.Wrap(err, "failed to track region")
	}

	bin.PutUint32(region, l.prior(root))
	l.setPrior(root, ref.Slot)
	l.count++

	return Handle{l.id, ref}, region[HeaderSize:], nil
}

// Free searches the chain for h, unlinks it and releases its region.
func (l *List) Free(h Handle) error {
	if err := l.enter(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	target, err := l.slotOf(h)
	if err != nil {
		return err
	}

	next := root
	for s := l.prior(root); s != nilSlot; next, s = s, l.prior(s) {
		if s != target {
			continue
		}
		l.setPrior(next, l.prior(s))
		l.count--
		l.provider.Free(l.slots.Region(s))
		l.slots.Release(s)
		return nil
	}
	return ErrNotFound
}

// Last returns the most recent element.
func (l *List) Last() (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	if s := l.prior(root); s != nilSlot {
		return l.handleOf(s), nil
	}
	return Handle{}, ErrNotFound
}

// Prior returns the element allocated just before h.
func (l *List) Prior(h Handle) (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return Handle{}, err
	}
	if p := l.prior(s); p != nilSlot {
		return l.handleOf(p), nil
	}
	return Handle{}, ErrNotFound
}

// Index returns the i-th element counting back from the most recent one,
// which is index 0.
func (l *List) Index(i int) (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	if i < 0 || i >= l.count {
		return Handle{}, ErrNotFound
	}
	s := l.prior(root)
	for ; i > 0; i-- {
		s = l.prior(s)
	}
	return l.handleOf(s), nil
}

func (l *List) Bytes(h Handle) ([]byte, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return nil, err
	}
	return l.slots.Region(s)[HeaderSize:], nil
}

func (l *List) Count() int {
	if err := l.enter(); err != nil {
		return 0
	}
	defer l.lock.Unlock()

	return l.count
}

func (l *List) prior(s uint32) uint32 {
	return bin.Uint32(l.slots.Region(s))
}

func (l *List) setPrior(s, v uint32) {
	bin.PutUint32(l.slots.Region(s), v)
}

func (l *List) handleOf(s uint32) Handle {
	return Handle{l.id, l.slots.Ref(s)}
}

func (l *List) slotOf(h Handle) (uint32, error) {
	if h.IsNil() {
		return nilSlot, ErrNilHandle
	}
	if h.list != l.id {
		return nilSlot, ErrForeignHandle
	}
	return l.slots.Lookup(h.ref)
}

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
