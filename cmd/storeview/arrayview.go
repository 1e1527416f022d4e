package main

import (
	"fmt"

	"github.com/joshuapare/valuecore/cell"
)

// arrayContainerView adapts an Array cell's unnamed element slice to
// cell.Container so storeview can browse it with the same row/cursor
// machinery it uses for named containers, keying each element by its
// index.
type arrayContainerView struct {
	elems []*cell.Cell
	keys  []string
}

func arrayContainer(elems []*cell.Cell) cell.Container {
	keys := make([]string, len(elems))
	for i := range elems {
		keys[i] = fmt.Sprintf("[%d]", i)
	}
	return &arrayContainerView{elems: elems, keys: keys}
}

func (a *arrayContainerView) Len() int { return len(a.elems) }

func (a *arrayContainerView) Get(key string) (*cell.Cell, bool) {
	for i, k := range a.keys {
		if k == key {
			return a.elems[i], true
		}
	}
	return nil, false
}

func (a *arrayContainerView) GetAll(key string) []*cell.Cell {
	if c, ok := a.Get(key); ok {
		return []*cell.Cell{c}
	}
	return nil
}

func (a *arrayContainerView) ForEach(fn func(key string, c *cell.Cell) bool) {
	for i, c := range a.elems {
		if !fn(a.keys[i], c) {
			return
		}
	}
}

func (a *arrayContainerView) Keys() []string { return a.keys }
