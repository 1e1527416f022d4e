package store_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateKeys(t *testing.T) {
	s := store.New()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Add("tag", cell.NewString("tag", v))
	}

	first, ok := s.Get("tag")
	require.True(t, ok)
	str, _ := first.GetString()
	assert.Equal(t, "a", str)

	all := s.GetAll("tag")
	require.Len(t, all, 5)
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		got, _ := all[i].GetString()
		assert.Equal(t, want, got)
	}

	n := s.Remove("tag")
	assert.Equal(t, 5, n)
	assert.True(t, s.Empty())
}

func TestOrderPreservation(t *testing.T) {
	s := store.New()
	keys := []string{"k1", "k2", "k1", "k3"}
	for i, k := range keys {
		s.Add(k, cell.NewInt(k, int32(i)))
	}
	var visited []string
	s.ForEach(func(key string, c *cell.Cell) bool {
		visited = append(visited, key)
		return true
	})
	assert.Equal(t, keys, visited)
}

func TestSetReplacesAllPriorCells(t *testing.T) {
	s := store.New()
	s.Add("k", cell.NewInt("k", 1))
	s.Add("k", cell.NewInt("k", 2))
	s.Set("k", cell.NewInt("k", 99))
	all := s.GetAll("k")
	require.Len(t, all, 1)
	v, _ := all[0].GetInt()
	assert.EqualValues(t, 99, v)
}

func TestCompareExchange(t *testing.T) {
	s := store.New()
	orig := cell.NewInt("counter", 0)
	s.Add("counter", orig)

	ok := s.CompareExchange("counter", cell.NewInt("counter", 1), cell.NewInt("counter", 42))
	assert.False(t, ok, "expected mismatch fails")

	ok = s.CompareExchange("counter", cell.NewInt("counter", 0), cell.NewInt("counter", 42))
	assert.True(t, ok)
	v, _ := s.Get("counter")
	n, _ := v.GetInt()
	assert.EqualValues(t, 42, n)
}

func TestCloneIsIndependent(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	outer := store.New()
	outer.Add("addr", cell.NewContainer("addr", inner))

	clone := outer.Clone()
	innerClone, _ := clone.Get("addr")
	ic, _ := innerClone.GetContainer()
	icStore := ic.(*store.Store)

	inner.Set("city", cell.NewString("city", "Portland"))

	v, _ := icStore.Get("city")
	s, _ := v.GetString()
	assert.Equal(t, "Seattle", s, "clone must not observe later mutation of the source")
}

func TestCellAsContainer(t *testing.T) {
	s := store.New()
	s.Add("id", cell.NewInt("id", 7))
	var c cell.Container = s
	assert.Equal(t, 1, c.Len())
}
