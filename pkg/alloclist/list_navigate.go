package alloclist

// Last returns the most recent element.
func (l *List) Last() (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	if l.count == 0 {
		return Handle{}, ErrNotFound
	}
	return l.handleOf(l.head()), nil
}

// First returns the oldest element. It walks the whole list.
func (l *List) First() (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	if l.count == 0 {
		return Handle{}, ErrNotFound
	}
	return l.handleOf(l.nthBefore(l.head(), l.count-1)), nil
}

// Before returns the element allocated just before h.
func (l *List) Before(h Handle) (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return Handle{}, err
	}
	if b := l.before(s); b != nilSlot {
		return l.handleOf(b), nil
	}
	return Handle{}, ErrNotFound
}

// After returns the element allocated just after h.
func (l *List) After(h Handle) (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	s, err := l.slotOf(h)
	if err != nil {
		return Handle{}, err
	}
	if a := l.after(s); a != sentinel && a != nilSlot {
		return l.handleOf(a), nil
	}
	return Handle{}, ErrNotFound
}

// Index returns the i-th element, 0 being the oldest and Count()-1 the most
// recent.
func (l *List) Index(i int) (Handle, error) {
	if err := l.enter(); err != nil {
		return Handle{}, err
	}
	defer l.lock.Unlock()

	if i < 0 || i >= l.count {
		return Handle{}, ErrNotFound
	}
	return l.handleOf(l.nthBefore(l.head(), l.count-1-i)), nil
}

// Each calls fn for every element from the oldest to the most recent until fn
// returns false. The list stays locked while fn runs, so fn must not call
// methods of the same list.
func (l *List) Each(fn func(h Handle, payload []byte) bool) error {
	if err := l.enter(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	if l.count == 0 {
		return nil
	}
	for s := l.nthBefore(l.head(), l.count-1); s != sentinel; s = l.after(s) {
		if !fn(l.handleOf(s), l.payload(s)) {
			return nil
		}
	}
	return nil
}
