// SPDX-License-Identifier: MIT
// Package: lvheap/fibonacci
//
// heap.go — Insert, ExtractMin, consolidation and queries.

package fibonacci

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvheap/core"
)

// Name is the Snapshot.Structure label of this package.
const Name = "fibonacci"

// DefaultCapacity is the node cap applied when no WithCapacity option is given.
const DefaultCapacity = 15

// Heap is a Fibonacci min-heap. It is not safe for concurrent use.
type Heap struct {
	a    arena
	head int // first root in drawing order
	min  int // root holding the minimum
	size int
	cfg  core.Options
}

// New returns an empty heap.
func New(opts ...core.Option) *Heap {
	return &Heap{
		head: nilIndex,
		min:  nilIndex,
		cfg:  core.NewOptions(DefaultCapacity, opts...),
	}
}

// Insert adds a singleton root at the tail of the root list.
// The trace holds exactly one step: the new node.
func (h *Heap) Insert(value int) (core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return core.Trace{}, err
	}
	if h.cfg.Full(h.size) {
		return core.Trace{}, fmt.Errorf("%w: fibonacci heap holds %d", core.ErrCapacityExceeded, h.size)
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	x := h.a.alloc(value)
	rec.Add(core.Structural, core.ActionInsert, []core.NodeID{h.a.nodes[x].id}, value)
	if h.head == nilIndex {
		h.head, h.min = x, x
	} else {
		h.a.insertBefore(h.head, x)
		if value < h.a.nodes[h.min].value {
			h.min = x
		}
	}
	h.size++

	return rec.Commit(), nil
}

// ExtractMin removes the minimum root, promotes its children and consolidates.
func (h *Heap) ExtractMin() (int, core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return 0, core.Trace{}, err
	}
	if h.size == 0 {
		return 0, core.Trace{}, core.ErrEmpty
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	z := h.min
	zn := h.a.nodes[z]
	rec.Add(core.Structural, core.ActionRemove, []core.NodeID{zn.id}, zn.value)

	// 1) Detach z from the root list.
	next := h.a.unlink(z)
	if h.head == z {
		h.head = next
	}

	// 2) Promote every child of z to the tail of the root list.
	kids := h.a.list(zn.child)
	if len(kids) > 0 {
		ids := make([]core.NodeID, len(kids))
		for i, c := range kids {
			ids[i] = h.a.nodes[c].id
		}
		rec.Add(core.Structural, core.ActionPromote, ids)
	}
	for _, c := range kids {
		h.a.nodes[c].parent = nilIndex
		h.a.nodes[c].marked = false
		h.a.isolate(c)
		if h.head == nilIndex {
			h.head = c
		} else {
			h.a.insertBefore(h.head, c)
		}
	}

	h.a.release(z)
	h.size--

	// 3) Rebuild the root list with distinct degrees.
	if h.head == nilIndex {
		h.min = nilIndex
	} else {
		h.consolidate(rec)
	}

	return zn.value, rec.Commit(), nil
}

// consolidate links roots of equal degree until all degrees differ, then
// rebuilds the root list in ascending degree order and recomputes min.
func (h *Heap) consolidate(rec *core.Recorder) {
	roots := h.a.list(h.head)
	table := make(map[int]int, len(roots)) // degree → root index

	for _, w := range roots {
		x := w
		d := h.a.nodes[x].degree
		for {
			y, ok := table[d]
			if !ok {
				break
			}
			// y was seen first and stays on top unless x is strictly smaller.
			xn, yn := h.a.nodes[x], h.a.nodes[y]
			rec.Compare(yn.id, xn.id, yn.value, xn.value)
			p, c := y, x
			if xn.value < yn.value {
				p, c = x, y
			}
			h.a.link(c, p)
			rec.Add(core.SwapOrLink, core.ActionLink,
				[]core.NodeID{h.a.nodes[p].id, h.a.nodes[c].id}, h.a.nodes[p].value, h.a.nodes[c].value)
			delete(table, d)
			x = p
			d++
		}
		table[d] = x
	}

	degrees := make([]int, 0, len(table))
	for d := range table {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	h.head, h.min = nilIndex, nilIndex
	for _, d := range degrees {
		r := table[d]
		h.a.isolate(r)
		if h.head == nilIndex {
			h.head = r
		} else {
			h.a.insertBefore(h.head, r)
		}
		if h.min == nilIndex || h.a.nodes[r].value < h.a.nodes[h.min].value {
			h.min = r
		}
	}
	rec.Add(core.Structural, core.ActionSelectMin, []core.NodeID{h.a.nodes[h.min].id}, h.a.nodes[h.min].value)
}

// PeekMin returns the value of the min root.
func (h *Heap) PeekMin() (int, error) {
	if h.min == nilIndex {
		return 0, core.ErrEmpty
	}

	return h.a.nodes[h.min].value, nil
}

// Size returns the number of stored values.
func (h *Heap) Size() int { return h.size }

// RootDegrees returns the degree of every root in root-list order.
func (h *Heap) RootDegrees() []int {
	roots := h.a.list(h.head)
	out := make([]int, len(roots))
	for i, r := range roots {
		out[i] = h.a.nodes[r].degree
	}

	return out
}

// Snapshot returns the root list and every child list in list order.
func (h *Heap) Snapshot() core.Snapshot {
	s := core.Snapshot{Structure: Name, Size: h.size, Min: core.NoNode}
	if h.min != nilIndex {
		s.Min = h.a.nodes[h.min].id
	}
	for _, r := range h.a.list(h.head) {
		s.Roots = append(s.Roots, h.snapshotNode(r))
	}

	return s
}

func (h *Heap) snapshotNode(i int) core.Node {
	n := h.a.nodes[i]
	out := core.Node{ID: n.id, Keys: []int{n.value}, Degree: n.degree, Marked: n.marked}
	for _, c := range h.a.list(n.child) {
		out.Children = append(out.Children, h.snapshotNode(c))
	}

	return out
}

var _ core.PriorityQueue = (*Heap)(nil)
