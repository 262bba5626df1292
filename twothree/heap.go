// SPDX-License-Identifier: MIT
// Package: lvheap/twothree
//
// heap.go — the Heap type, Insert with bottom-up splits, and queries.

package twothree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvheap/core"
)

// Name is the Snapshot.Structure label of this package.
const Name = "twothree"

// DefaultCapacity is the node cap applied when no WithCapacity option is given.
const DefaultCapacity = 10

// Heap is a 2-3 tree used as a min-priority queue. It is not safe for concurrent use.
type Heap struct {
	a     arena
	root  int
	size  int // keys
	count int // nodes
	cfg   core.Options
}

// New returns an empty heap.
func New(opts ...core.Option) *Heap {
	return &Heap{root: nilIndex, cfg: core.NewOptions(DefaultCapacity, opts...)}
}

// childIndex picks the branch value descends into.
func childIndex(keys []int, value int) int {
	switch {
	case value < keys[0]:
		return 0
	case len(keys) == 1 || value < keys[1]:
		return 1
	default:
		return 2
	}
}

// Insert adds value to its leaf and splits overflowing nodes bottom-up.
//
// Steps: descend(node) per internal level, insert(leaf), then split(left,right[,parent])
// per overflow and grow(new root) when the root splits.
func (h *Heap) Insert(value int) (core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return core.Trace{}, err
	}
	if h.cfg.Full(h.count) {
		return core.Trace{}, fmt.Errorf("%w: 2-3 heap has %d nodes", core.ErrCapacityExceeded, h.count)
	}

	rec := core.NewRecorder(h.cfg.OnStep)
	h.size++

	// 1) Empty tree: a single-key root.
	if h.root == nilIndex {
		h.root = h.a.alloc([]int{value}, nil)
		h.count++
		rec.Add(core.Structural, core.ActionInsert, []core.NodeID{h.a.nodes[h.root].id}, value)
		return rec.Commit(), nil
	}

	// 2) Descend to the leaf, recording the path.
	path := make([]int, 0, 4)
	cur := h.root
	for !h.a.nodes[cur].leaf() {
		path = append(path, cur)
		n := &h.a.nodes[cur]
		rec.Add(core.Compare, core.ActionDescend, []core.NodeID{n.id}, value)
		cur = n.children[childIndex(n.keys, value)]
	}
	path = append(path, cur)

	// 3) Place the key after any equal keys.
	leaf := &h.a.nodes[cur]
	pos := sort.Search(len(leaf.keys), func(i int) bool { return leaf.keys[i] > value })
	leaf.keys = insertAt(leaf.keys, pos, value)
	rec.Add(core.Structural, core.ActionInsert, []core.NodeID{leaf.id}, value)

	// 4) Split bottom-up while a node overflows.
	for i := len(path) - 1; i >= 0; i-- {
		if len(h.a.nodes[path[i]].keys) < 3 {
			break
		}
		h.split(path[i], rec)
	}

	return rec.Commit(), nil
}

// split turns the 3-key node x into x=[k1] and a new right sibling [k3],
// pushing k2 into the parent (or into a new root).
func (h *Heap) split(x int, rec *core.Recorder) {
	keys := h.a.nodes[x].keys
	mid := keys[1]

	var rightKids []int
	if !h.a.nodes[x].leaf() {
		rightKids = h.a.nodes[x].children[2:]
	}
	right := h.a.alloc([]int{keys[2]}, rightKids)
	h.count++

	xn := &h.a.nodes[x]
	xn.keys = []int{keys[0]}
	if !xn.leaf() {
		xn.children = xn.children[:2]
	}

	p, xid := xn.parent, xn.id
	if p == nilIndex {
		// alloc may grow the arena; xn is not used past this point.
		h.root = h.a.alloc([]int{mid}, []int{x, right})
		h.count++
		rec.Add(core.Structural, core.ActionSplit, []core.NodeID{xid, h.a.nodes[right].id}, keys...)
		rec.Add(core.Structural, core.ActionGrow, []core.NodeID{h.a.nodes[h.root].id}, mid)
		return
	}

	at := h.a.childPos(x)
	pn := &h.a.nodes[p]
	pn.keys = insertAt(pn.keys, at, mid)
	pn.children = insertAt(pn.children, at+1, right)
	h.a.nodes[right].parent = p
	rec.Add(core.Structural, core.ActionSplit, []core.NodeID{xid, h.a.nodes[right].id, pn.id}, keys...)
}

// leftmostLeaf returns the leaf holding the minimum, nilIndex when empty.
func (h *Heap) leftmostLeaf() int {
	cur := h.root
	for cur != nilIndex && !h.a.nodes[cur].leaf() {
		cur = h.a.nodes[cur].children[0]
	}

	return cur
}

// PeekMin returns the first key of the leftmost leaf.
func (h *Heap) PeekMin() (int, error) {
	l := h.leftmostLeaf()
	if l == nilIndex {
		return 0, core.ErrEmpty
	}

	return h.a.nodes[l].keys[0], nil
}

// Size returns the number of stored keys.
func (h *Heap) Size() int { return h.size }

// Nodes returns the number of tree nodes, the quantity the cap applies to.
func (h *Heap) Nodes() int { return h.count }

// Height returns the number of levels, 0 when empty.
func (h *Heap) Height() int {
	n := 0
	for cur := h.root; cur != nilIndex; n++ {
		if h.a.nodes[cur].leaf() {
			return n + 1
		}
		cur = h.a.nodes[cur].children[0]
	}

	return n
}

// Snapshot returns the tree rooted at the root node.
func (h *Heap) Snapshot() core.Snapshot {
	s := core.Snapshot{Structure: Name, Size: h.size, Min: core.NoNode}
	if h.root == nilIndex {
		return s
	}
	s.Min = h.a.nodes[h.leftmostLeaf()].id
	s.Roots = []core.Node{h.snapshotNode(h.root)}

	return s
}

func (h *Heap) snapshotNode(i int) core.Node {
	n := h.a.nodes[i]
	out := core.Node{ID: n.id, Keys: append([]int(nil), n.keys...), Degree: len(n.children)}
	for _, c := range n.children {
		out.Children = append(out.Children, h.snapshotNode(c))
	}

	return out
}

var _ core.PriorityQueue = (*Heap)(nil)
