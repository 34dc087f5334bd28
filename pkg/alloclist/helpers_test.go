package alloclist

import (
	"testing"

	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"
	"go-alloclist/util/helpers"

	"github.com/stretchr/testify/require"
)

type testList struct {
	*List
	mem  *provider.Counting
	lock *locker.Counting
}

func newTestList(t testing.TB) *testList {
	mem := provider.NewCounting(provider.NewHeap())
	lock := locker.NewCounting(locker.NewMutex())

	l, err := New(&Options{Provider: mem, Locker: lock})
	require.NoError(t, err)
	require.NotNil(t, l)

	tl := &testList{List: l, mem: mem, lock: lock}
	t.Cleanup(func() { require.NoError(t, tl.Destroy()) })
	return tl
}

func (tl *testList) resetStats() {
	tl.mem.Reset()
	tl.lock.Reset()
}

func (tl *testList) requireCalls(t testing.TB, locks int64) {
	t.Helper()
	require.Equal(t, locks, tl.lock.Locks(), "locks")
	require.Equal(t, locks, tl.lock.Unlocks(), "unlocks")
}

func (tl *testList) push(t testing.TB, vals ...int32) []Handle {
	t.Helper()
	handles := make([]Handle, 0, len(vals))
	for _, v := range vals {
		h, buf, err := tl.Allocate(4)
		require.NoError(t, err)
		helpers.PutInt(buf, v)
		handles = append(handles, h)
	}
	return handles
}

func (tl *testList) value(t testing.TB, h Handle) int32 {
	t.Helper()
	buf, err := tl.Bytes(h)
	require.NoError(t, err)
	return helpers.Int[int32](buf)
}

func (tl *testList) values(t testing.TB) []int32 {
	t.Helper()
	vals := []int32{}
	for i := 0; i < tl.Count(); i++ {
		h, err := tl.Index(i)
		require.NoError(t, err)
		vals = append(vals, tl.value(t, h))
	}
	return vals
}

// requireLinks walks the chain in both directions and checks that the links
// agree with each other and with the element count.
func requireLinks(t testing.TB, l *List) {
	t.Helper()
	l.lock.Lock()
	defer l.lock.Unlock()

	require.Equal(t, nilSlot, l.after(sentinel), "sentinel after link")

	n := 0
	prev := uint32(sentinel)
	for s := l.head(); s != nilSlot; s = l.before(s) {
		require.Equal(t, prev, l.after(s), "after link of slot %d", s)
		require.LessOrEqual(t, n, l.count, "chain longer than count")
		prev = s
		n++
	}
	require.Equal(t, l.count, n, "chain length")
	require.Equal(t, l.count+1, l.slots.Live(), "live slots")
}
