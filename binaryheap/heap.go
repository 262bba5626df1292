// SPDX-License-Identifier: MIT
// Package: lvheap/binaryheap
//
// heap.go — the Heap type, sift-up/sift-down, heapify and Validate.

package binaryheap

import (
	"fmt"

	"cloudeng.io/errors"

	"github.com/katalvlaran/lvheap/core"
)

// Name is the Snapshot.Structure label of this package.
const Name = "binary"

// DefaultCapacity is the value cap applied when no WithCapacity option is given.
const DefaultCapacity = 15

// Heap is an array-backed binary min-heap. It is not safe for concurrent use.
type Heap struct {
	values []int
	cfg    core.Options
}

// New returns an empty heap.
func New(opts ...core.Option) *Heap {
	return &Heap{cfg: core.NewOptions(DefaultCapacity, opts...)}
}

// NewFromSlice returns a heap holding values, heapified bottom-up.
// values is copied. Fails with ErrCapacityExceeded if values do not fit the cap.
func NewFromSlice(values []int, opts ...core.Option) (*Heap, error) {
	h := New(opts...)
	if err := h.cfg.Err(); err != nil {
		return nil, err
	}
	if h.cfg.Capacity != core.Unbounded && len(values) > h.cfg.Capacity {
		return nil, fmt.Errorf("%w: %d values, cap %d", core.ErrCapacityExceeded, len(values), h.cfg.Capacity)
	}
	h.values = append(make([]int, 0, len(values)), values...)
	// Floyd's heapify; the trace is not kept, seeding is not an animated operation.
	rec := core.NewRecorder(nil)
	for i := len(h.values)/2 - 1; i >= 0; i-- {
		h.siftDown(i, rec)
	}

	return h, nil
}

// Insert appends value and restores heap order by sifting it up.
//
// Steps: insert(new index), then for each level compare(child,parent) and,
// when the parent is strictly greater, swap(child,parent).
func (h *Heap) Insert(value int) (core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return core.Trace{}, err
	}
	if h.cfg.Full(len(h.values)) {
		return core.Trace{}, fmt.Errorf("%w: binary heap holds %d", core.ErrCapacityExceeded, len(h.values))
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	h.values = append(h.values, value)
	i := len(h.values) - 1
	rec.Add(core.Structural, core.ActionInsert, []core.NodeID{core.NodeID(i)}, value)
	h.siftUp(i, rec)

	return rec.Commit(), nil
}

// siftUp moves the value at i towards the root while its parent is strictly greater.
func (h *Heap) siftUp(i int, rec *core.Recorder) {
	for i > 0 {
		p := (i - 1) / 2
		rec.Compare(core.NodeID(i), core.NodeID(p), h.values[i], h.values[p])
		if h.values[p] <= h.values[i] {
			return
		}
		rec.Add(core.SwapOrLink, core.ActionSwap, []core.NodeID{core.NodeID(i), core.NodeID(p)}, h.values[i], h.values[p])
		h.values[i], h.values[p] = h.values[p], h.values[i]
		i = p
	}
}

// ExtractMin removes and returns the root value.
func (h *Heap) ExtractMin() (int, core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return 0, core.Trace{}, err
	}
	n := len(h.values)
	if n == 0 {
		return 0, core.Trace{}, core.ErrEmpty
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	root := h.values[0]
	rec.Add(core.Structural, core.ActionRemove, []core.NodeID{0}, root)
	if n == 1 {
		h.values = h.values[:0]
		return root, rec.Commit(), nil
	}

	// 1) Move the last value into the root slot and shrink.
	last := n - 1
	rec.Add(core.Structural, core.ActionMoveLast, []core.NodeID{core.NodeID(last), 0}, h.values[last])
	h.values[0] = h.values[last]
	h.values = h.values[:last]

	// 2) Restore order from the root down.
	h.siftDown(0, rec)

	return root, rec.Commit(), nil
}

// siftDown moves the value at i down until no child is smaller.
// The right child wins only when strictly smaller than the current candidate.
func (h *Heap) siftDown(i int, rec *core.Recorder) {
	n := len(h.values)
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < n {
			rec.Compare(core.NodeID(l), core.NodeID(smallest), h.values[l], h.values[smallest])
			if h.values[l] < h.values[smallest] {
				smallest = l
			}
		}
		if r < n {
			rec.Compare(core.NodeID(r), core.NodeID(smallest), h.values[r], h.values[smallest])
			if h.values[r] < h.values[smallest] {
				smallest = r
			}
		}
		if smallest == i {
			return
		}
		rec.Add(core.SwapOrLink, core.ActionSwap, []core.NodeID{core.NodeID(i), core.NodeID(smallest)}, h.values[i], h.values[smallest])
		h.values[i], h.values[smallest] = h.values[smallest], h.values[i]
		i = smallest
	}
}

// PeekMin returns the root value.
func (h *Heap) PeekMin() (int, error) {
	if len(h.values) == 0 {
		return 0, core.ErrEmpty
	}

	return h.values[0], nil
}

// Size returns the number of stored values.
func (h *Heap) Size() int { return len(h.values) }

// Values returns a copy of the backing array in index order.
func (h *Heap) Values() []int {
	return append([]int(nil), h.values...)
}

// Snapshot returns the array and its implicit tree.
func (h *Heap) Snapshot() core.Snapshot {
	s := core.Snapshot{Structure: Name, Size: len(h.values), Min: core.NoNode, Values: h.Values()}
	if len(h.values) > 0 {
		s.Min = 0
		s.Roots = []core.Node{h.node(0)}
	}

	return s
}

func (h *Heap) node(i int) core.Node {
	nd := core.Node{ID: core.NodeID(i), Keys: []int{h.values[i]}}
	for _, c := range []int{2*i + 1, 2*i + 2} {
		if c < len(h.values) {
			nd.Children = append(nd.Children, h.node(c))
		}
	}
	nd.Degree = len(nd.Children)

	return nd
}

// Validate reports every index whose parent holds a greater value.
func (h *Heap) Validate() error {
	errs := errors.M{}
	for i := 1; i < len(h.values); i++ {
		p := (i - 1) / 2
		if h.values[p] > h.values[i] {
			errs.Append(fmt.Errorf("values[%d]=%d > values[%d]=%d", p, h.values[p], i, h.values[i]))
		}
	}
	if h.cfg.Capacity != core.Unbounded && len(h.values) > h.cfg.Capacity {
		errs.Append(fmt.Errorf("%d values exceed cap %d", len(h.values), h.cfg.Capacity))
	}

	return core.Violations(Name, errs.Err())
}

var _ core.PriorityQueue = (*Heap)(nil)
