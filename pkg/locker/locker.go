// Package locker provides the mutual-exclusion primitives a list can be
// configured with.
package locker

import "sync"

// Locker is the lock collaborator of a list. Init is called once when the list
// is created and Destroy once when it is destroyed; Lock and Unlock bracket
// every operation in between.
type Locker interface {
	Init()
	Lock()
	Unlock()
	Destroy()
}

// Noop performs no synchronization, for lists used from a single goroutine.
type Noop struct{}

func (Noop) Init()    {}
func (Noop) Lock()    {}
func (Noop) Unlock()  {}
func (Noop) Destroy() {}

// Mutex serializes operations with a sync.Mutex.
type Mutex struct {
	m sync.Mutex
}

func NewMutex() *Mutex { return &Mutex{} }

func (m *Mutex) Init()    {}
func (m *Mutex) Lock()    { m.m.Lock() }
func (m *Mutex) Unlock()  { m.m.Unlock() }
func (m *Mutex) Destroy() {}
