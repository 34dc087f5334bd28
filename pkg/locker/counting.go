package locker

import "go.uber.org/atomic"

// Counting records every call made to it before delegating to another
// locker. A nil next behaves like Noop.
type Counting struct {
	next Locker

	inits    *atomic.Int64
	locks    *atomic.Int64
	unlocks  *atomic.Int64
	destroys *atomic.Int64
}

func NewCounting(next Locker) *Counting {
	if next == nil {
		next = Noop{}
	}
	return &Counting{
		next:     next,
		inits:    atomic.NewInt64(0),
		locks:    atomic.NewInt64(0),
		unlocks:  atomic.NewInt64(0),
		destroys: atomic.NewInt64(0),
	}
}

func (c *Counting) Init() {
	c.inits.Inc()
	c.next.Init()
}

func (c *Counting) Lock() {
	c.next.Lock()
	c.locks.Inc()
}

func (c *Counting) Unlock() {
	c.unlocks.Inc()
	c.next.Unlock()
}

func (c *Counting) Destroy() {
	c.destroys.Inc()
	c.next.Destroy()
}

func (c *Counting) Inits() int64    { return c.inits.Load() }
func (c *Counting) Locks() int64    { return c.locks.Load() }
func (c *Counting) Unlocks() int64  { return c.unlocks.Load() }
func (c *Counting) Destroys() int64 { return c.destroys.Load() }

func (c *Counting) Reset() {
	c.inits.Store(0)
	c.locks.Store(0)
	c.unlocks.Store(0)
	c.destroys.Store(0)
}
