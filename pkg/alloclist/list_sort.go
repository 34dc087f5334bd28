package alloclist

// Sort relinks the elements so that Index walks them in ascending order of
// cmp, which returns a negative number when a orders before b. Payloads are
// not moved and handles stay valid. Elements cmp reports as equal keep their
// relative order.
func (l *List) Sort(cmp func(a, b []byte) int) error {
	if err := l.enter(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	if cmp == nil {
		return ErrNilComparator
	}

	if l.count > 1 {
		l.sort(cmp)
	}
	return nil
}

// sort bubbles smaller elements towards the oldest end, one adjacent pair at
// a time, until a pass completes without swapping.
func (l *List) sort(cmp func(a, b []byte) int) {
	for swapped := true; swapped; {
		swapped = false

		x := l.head()
		y := l.before(x)
		for y != nilSlot {
			if cmp(l.payload(x), l.payload(y)) < 0 {
				l.swap(x, y)
				x, y = y, x
				swapped = true
			}
			x = y
			y = l.before(y)
		}
	}
}

// swap exchanges x and the element right before it, y.
func (l *List) swap(x, y uint32) {
	outerAfter := l.after(x)
	outerBefore := l.before(y)

	if outerBefore != nilSlot {
		l.setAfter(outerBefore, x)
	}
	l.setBefore(outerAfter, y)

	l.setAfter(y, outerAfter)
	l.setBefore(x, outerBefore)
	l.setBefore(y, x)
	l.setAfter(x, y)
}
