package provider

import "go.uber.org/atomic"

// Counting wraps a provider and keeps track of outstanding regions and bytes.
type Counting struct {
	next    Provider
	regions *atomic.Int64
	bytes   *atomic.Int64
	allocs  *atomic.Int64
	frees   *atomic.Int64
}

func NewCounting(next Provider) *Counting {
	return &Counting{
		next:    next,
		regions: atomic.NewInt64(0),
		bytes:   atomic.NewInt64(0),
		allocs:  atomic.NewInt64(0),
		frees:   atomic.NewInt64(0),
	}
}

func (c *Counting) Alloc(size int) ([]byte, error) {
	region, err := c.next.Alloc(size)
	if err != nil {
		return nil, err
	}
	c.allocs.Inc()
	c.regions.Inc()
	c.bytes.Add(int64(len(region)))
	return region, nil
}

func (c *Counting) Free(region []byte) {
	c.frees.Inc()
	c.regions.Dec()
	c.bytes.Sub(int64(len(region)))
	c.next.Free(region)
}

// Outstanding is the number of regions allocated and not yet freed.
func (c *Counting) Outstanding() int64 { return c.regions.Load() }

func (c *Counting) Bytes() int64 { return c.bytes.Load() }

func (c *Counting) Allocs() int64 { return c.allocs.Load() }

func (c *Counting) Frees() int64 { return c.frees.Load() }

// Reset zeroes the call counters without touching the outstanding totals.
func (c *Counting) Reset() {
	c.allocs.Store(0)
	c.frees.Store(0)
}
