// SPDX-License-Identifier: MIT
// Package: lvheap/binomial
//
// heap.go — the Heap type, Insert, ExtractMin and queries.

package binomial

import (
	"fmt"

	"github.com/katalvlaran/lvheap/core"
)

// Name is the Snapshot.Structure label of this package.
const Name = "binomial"

// DefaultCapacity is the node cap applied when no WithCapacity option is given.
const DefaultCapacity = 15

// Heap is a binomial min-heap. It is not safe for concurrent use.
type Heap struct {
	roots  []*node // strictly increasing degree
	size   int
	nextID core.NodeID
	cfg    core.Options
}

// New returns an empty heap.
func New(opts ...core.Option) *Heap {
	return &Heap{cfg: core.NewOptions(DefaultCapacity, opts...)}
}

// Insert unions the heap with a one-node tree holding value.
//
// Steps: insert(new node), then one compare + link per carry.
func (h *Heap) Insert(value int) (core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return core.Trace{}, err
	}
	if h.cfg.Full(h.size) {
		return core.Trace{}, fmt.Errorf("%w: binomial heap holds %d", core.ErrCapacityExceeded, h.size)
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	n := &node{id: h.nextID, value: value}
	rec.Add(core.Structural, core.ActionInsert, []core.NodeID{n.id}, value)

	j := &journal{}
	roots := union(h.roots, []*node{n}, rec, j)
	if err := h.commit(roots, h.size+1, j); err != nil {
		rec.Discard()
		return core.Trace{}, err
	}
	h.nextID++

	return rec.Commit(), nil
}

// ExtractMin removes the root holding the minimum and unions its children
// back into the root list.
func (h *Heap) ExtractMin() (int, core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return 0, core.Trace{}, err
	}
	if h.size == 0 {
		return 0, core.Trace{}, core.ErrEmpty
	}

	rec := core.NewRecorder(h.cfg.OnStep)

	// 1) Linear scan; the first of equal minima wins.
	best := 0
	for i := 1; i < len(h.roots); i++ {
		rec.Compare(h.roots[i].id, h.roots[best].id, h.roots[i].value, h.roots[best].value)
		if h.roots[i].value < h.roots[best].value {
			best = i
		}
	}
	top := h.roots[best]
	rec.Add(core.Structural, core.ActionRemove, []core.NodeID{top.id}, top.value)

	// 2) Remaining roots, without touching h.roots.
	rest := make([]*node, 0, len(h.roots)-1)
	rest = append(rest, h.roots[:best]...)
	rest = append(rest, h.roots[best+1:]...)

	// 3) Children become roots; links append, so child i already has degree i.
	kids := append([]*node(nil), top.children...)
	ids := make([]core.NodeID, len(kids))
	for i, c := range kids {
		ids[i] = c.id
	}
	if len(kids) > 0 {
		rec.Add(core.Structural, core.ActionPromote, ids)
	}

	// 4) Union and commit, or roll back.
	j := &journal{}
	roots := union(rest, kids, rec, j)
	if err := h.commit(roots, h.size-1, j); err != nil {
		rec.Discard()
		return 0, core.Trace{}, err
	}

	return top.value, rec.Commit(), nil
}

// commit installs roots if their degrees are pairwise distinct. Otherwise it
// undoes every link in j and returns ErrInvariantViolation; h is unchanged.
func (h *Heap) commit(roots []*node, size int, j *journal) error {
	seen := make(map[int]bool, len(roots))
	for _, r := range roots {
		if seen[r.degree()] {
			j.undo()
			return fmt.Errorf("%w: binomial: two roots of degree %d after union", core.ErrInvariantViolation, r.degree())
		}
		seen[r.degree()] = true
	}
	h.roots = roots
	h.size = size

	return nil
}

// minRoot returns the root holding the minimum (first on ties), nil when empty.
func (h *Heap) minRoot() *node {
	var best *node
	for _, r := range h.roots {
		if best == nil || r.value < best.value {
			best = r
		}
	}

	return best
}

// PeekMin scans the roots for the minimum.
func (h *Heap) PeekMin() (int, error) {
	m := h.minRoot()
	if m == nil {
		return 0, core.ErrEmpty
	}

	return m.value, nil
}

// Size returns the number of stored values.
func (h *Heap) Size() int { return h.size }

// Degrees returns the root degrees in root-list order.
func (h *Heap) Degrees() []int {
	out := make([]int, len(h.roots))
	for i, r := range h.roots {
		out[i] = r.degree()
	}

	return out
}

// Snapshot returns the forest in root-list order.
func (h *Heap) Snapshot() core.Snapshot {
	s := core.Snapshot{Structure: Name, Size: h.size, Min: core.NoNode}
	if m := h.minRoot(); m != nil {
		s.Min = m.id
	}
	for _, r := range h.roots {
		s.Roots = append(s.Roots, snapshotNode(r))
	}

	return s
}

func snapshotNode(n *node) core.Node {
	out := core.Node{ID: n.id, Keys: []int{n.value}, Degree: n.degree()}
	for _, c := range n.children {
		out.Children = append(out.Children, snapshotNode(c))
	}

	return out
}

var _ core.PriorityQueue = (*Heap)(nil)
