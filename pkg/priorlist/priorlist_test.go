package priorlist

import (
	"fmt"
	"math"
	"testing"

	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"
	"go-alloclist/util/helpers"

	"github.com/stretchr/testify/require"
)

func newList(t *testing.T) (*List, *provider.Counting, *locker.Counting) {
	mem := provider.NewCounting(provider.NewHeap())
	lock := locker.NewCounting(nil)

	l, err := New(&Options{Provider: mem, Locker: lock})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, l.Destroy()) })
	return l, mem, lock
}

func push(t *testing.T, l *List, vals ...string) []Handle {
	handles := []Handle{}
	for _, v := range vals {
		h, buf, err := l.Allocate(len(v))
		require.NoError(t, err)
		copy(buf, v)
		handles = append(handles, h)
	}
	return handles
}

func walk(t *testing.T, l *List) []string {
	vals := []string{}
	for h, err := l.Last(); err == nil; h, err = l.Prior(h) {
		buf, err := l.Bytes(h)
		require.NoError(t, err)
		vals = append(vals, string(buf))
	}
	return vals
}

func TestCreate(t *testing.T) {
	l, mem, lock := newList(t)

	require.EqualValues(t, 1, mem.Outstanding())
	require.EqualValues(t, HeaderSize, mem.Bytes())
	require.EqualValues(t, 1, lock.Inits())
	require.Equal(t, 0, l.Count())

	_, err := l.Last()
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.Index(0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFreeInAnyOrder(t *testing.T) {
	l, mem, _ := newList(t)
	hs := push(t, l, "BANANA", "GRAPE", "APPLE", "ORANGE", "MANDARIN")
	require.Equal(t, []string{"MANDARIN", "ORANGE", "APPLE", "GRAPE", "BANANA"}, walk(t, l))

	require.NoError(t, l.Free(hs[1]))
	require.Equal(t, []string{"MANDARIN", "ORANGE", "APPLE", "BANANA"}, walk(t, l))
	require.NoError(t, l.Free(hs[3]))
	require.Equal(t, []string{"MANDARIN", "APPLE", "BANANA"}, walk(t, l))
	require.NoError(t, l.Free(hs[2]))
	require.Equal(t, []string{"MANDARIN", "BANANA"}, walk(t, l))
	require.NoError(t, l.Free(hs[4]))
	require.Equal(t, []string{"BANANA"}, walk(t, l))
	require.NoError(t, l.Free(hs[0]))
	require.Empty(t, walk(t, l))

	require.Equal(t, 0, l.Count())
	require.EqualValues(t, 1, mem.Outstanding())
}

func TestFreeInvalid(t *testing.T) {
	l, _, _ := newList(t)
	other, _, _ := newList(t)
	h := push(t, l, "a")[0]
	o := push(t, other, "b")[0]

	require.ErrorIs(t, l.Free(o), ErrForeignHandle)
	require.ErrorIs(t, l.Free(Handle{}), ErrNilHandle)
	require.NoError(t, l.Free(h))
	require.Error(t, l.Free(h))
	require.Equal(t, 1, other.Count())
}

func TestIndex(t *testing.T) {
	l, _, lock := newList(t)
	for i := int32(1); i <= 5; i++ {
		_, buf, err := l.Allocate(4)
		require.NoError(t, err)
		helpers.PutInt(buf, i)
	}

	lock.Reset()
	for i := 0; i < 5; i++ {
		h, err := l.Index(i)
		require.NoError(t, err)
		buf, err := l.Bytes(h)
		require.NoError(t, err)
		require.EqualValues(t, 5-i, helpers.Int[int32](buf))
	}
	require.EqualValues(t, 10, lock.Locks())
	require.EqualValues(t, 10, lock.Unlocks())

	_, err := l.Index(5)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.Index(-1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDestroy(t *testing.T) {
	mem := provider.NewCounting(provider.NewHeap())
	lock := locker.NewCounting(nil)
	l, err := New(&Options{Provider: mem, Locker: lock})
	require.NoError(t, err)
	push(t, l, "x", "yy", "zzz")

	require.NoError(t, l.Destroy())
	require.NoError(t, l.Destroy())
	require.EqualValues(t, 0, mem.Outstanding())
	require.EqualValues(t, 1, lock.Destroys())

	_, _, err = l.Allocate(1)
	require.ErrorIs(t, err, ErrDestroyed)
	require.Equal(t, 0, l.Count())
}

func TestAllocateOutOfMemory(t *testing.T) {
	l, err := New(&Options{Provider: provider.NewLimited(provider.NewHeap(), HeaderSize+HeaderSize+1)})
	require.NoError(t, err)
	defer l.Destroy()

	push(t, l, "a")
	_, _, err = l.Allocate(1)
	require.ErrorIs(t, err, provider.ErrOutOfMemory)
	require.Equal(t, 1, l.Count())
}

func TestAllocateHugeSizes(t *testing.T) {
	l, mem, _ := newList(t)
	push(t, l, "a")
	mem.Reset()

	_, _, err := l.Allocate(math.MaxInt)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, _, err = l.Allocate(MaxSize + 1)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, _, err = l.Allocate(MaxSize)
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.EqualValues(t, 0, mem.Allocs())
	require.Equal(t, []string{"a"}, walk(t, l))
}

func TestDestroyPointer(t *testing.T) {
	mem := provider.NewCounting(provider.NewHeap())
	l, err := New(&Options{Provider: mem})
	require.NoError(t, err)
	push(t, l, "x", "yy")

	require.NoError(t, Destroy(&l))
	require.Nil(t, l)
	require.EqualValues(t, 0, mem.Outstanding())

	require.NoError(t, Destroy(&l))
	require.NoError(t, Destroy(nil))
}

func TestHandleFormat(t *testing.T) {
	l, _, _ := newList(t)
	h := push(t, l, "a")[0]

	require.Equal(t, "<nil>", fmt.Sprint(Handle{}))
	require.Equal(t, fmt.Sprintf("{list:'%v', ref:%v}", h.list, h.ref), fmt.Sprint(h))
}
