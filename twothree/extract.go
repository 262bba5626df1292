// SPDX-License-Identifier: MIT
// Package: lvheap/twothree
//
// extract.go — ExtractMin and underflow repair.

package twothree

import "github.com/katalvlaran/lvheap/core"

// ExtractMin removes the first key of the leftmost leaf and repairs any
// underflow on the way back to the root.
func (h *Heap) ExtractMin() (int, core.Trace, error) {
	if err := h.cfg.Err(); err != nil {
		return 0, core.Trace{}, err
	}
	if h.root == nilIndex {
		return 0, core.Trace{}, core.ErrEmpty
	}

	rec := core.NewRecorder(h.cfg.OnStep)

	// 1) Always descend through child[0].
	cur := h.root
	for !h.a.nodes[cur].leaf() {
		n := &h.a.nodes[cur]
		rec.Add(core.Compare, core.ActionDescend, []core.NodeID{n.id}, n.keys[0])
		cur = n.children[0]
	}

	// 2) Drop the minimum.
	leaf := &h.a.nodes[cur]
	v := leaf.keys[0]
	leaf.keys = leaf.keys[1:]
	h.size--
	rec.Add(core.Structural, core.ActionRemove, []core.NodeID{leaf.id}, v)

	// 3) Repair if the leaf is now empty.
	if len(leaf.keys) == 0 {
		h.fix(cur, rec)
	}

	return v, rec.Commit(), nil
}

// fix repairs the key-less node n, moving up while merges empty the parent.
func (h *Heap) fix(n int, rec *core.Recorder) {
	for {
		if n == h.root {
			h.fixRoot(n, rec)
			return
		}

		p := h.a.nodes[n].parent
		i := h.a.childPos(n)
		kids := h.a.nodes[p].children

		switch {
		case i > 0 && len(h.a.nodes[kids[i-1]].keys) == 2:
			h.borrowLeft(n, kids[i-1], p, i, rec)
			return
		case i+1 < len(kids) && len(h.a.nodes[kids[i+1]].keys) == 2:
			h.borrowRight(n, kids[i+1], p, i, rec)
			return
		case i+1 < len(kids):
			h.merge(n, kids[i+1], p, i, rec)
		default:
			h.merge(kids[i-1], n, p, i-1, rec)
		}

		if len(h.a.nodes[p].keys) > 0 {
			return
		}
		n = p
	}
}

// fixRoot drops a key-less root: its only child takes over, or the tree empties.
func (h *Heap) fixRoot(r int, rec *core.Recorder) {
	rn := h.a.nodes[r]
	if len(rn.keys) > 0 {
		return
	}
	switch len(rn.children) {
	case 0:
		h.root = nilIndex
		rec.Add(core.Structural, core.ActionShrink, []core.NodeID{rn.id})
	default:
		c := rn.children[0]
		h.a.nodes[c].parent = nilIndex
		h.root = c
		rec.Add(core.Structural, core.ActionShrink, []core.NodeID{rn.id, h.a.nodes[c].id})
	}
	h.a.release(r)
	h.count--
}

// borrowLeft rotates the left sibling's largest key through separator i-1.
func (h *Heap) borrowLeft(n, l, p, i int, rec *core.Recorder) {
	ln, nn, pn := &h.a.nodes[l], &h.a.nodes[n], &h.a.nodes[p]
	nn.keys = []int{pn.keys[i-1]}
	pn.keys[i-1] = ln.keys[1]
	ln.keys = ln.keys[:1]
	if !ln.leaf() {
		c := ln.children[2]
		ln.children = ln.children[:2]
		nn.children = insertAt(nn.children, 0, c)
		h.a.nodes[c].parent = n
	}
	rec.Add(core.SwapOrLink, core.ActionBorrow, []core.NodeID{nn.id, ln.id, pn.id}, nn.keys[0], pn.keys[i-1])
}

// borrowRight rotates the right sibling's smallest key through separator i.
func (h *Heap) borrowRight(n, r, p, i int, rec *core.Recorder) {
	rn, nn, pn := &h.a.nodes[r], &h.a.nodes[n], &h.a.nodes[p]
	nn.keys = []int{pn.keys[i]}
	pn.keys[i] = rn.keys[0]
	rn.keys = rn.keys[1:]
	if !rn.leaf() {
		c := rn.children[0]
		rn.children = rn.children[1:]
		h.a.adopt(n, c)
	}
	rec.Add(core.SwapOrLink, core.ActionBorrow, []core.NodeID{nn.id, rn.id, pn.id}, nn.keys[0], pn.keys[i])
}

// merge folds right into left around separator sep of p and frees right.
// One of the two is key-less, the other holds exactly one key.
func (h *Heap) merge(left, right, p, sep int, rec *core.Recorder) {
	ln, rn, pn := &h.a.nodes[left], &h.a.nodes[right], &h.a.nodes[p]
	keys := make([]int, 0, 2)
	keys = append(keys, ln.keys...)
	keys = append(keys, pn.keys[sep])
	keys = append(keys, rn.keys...)
	ln.keys = keys
	rec.Add(core.Structural, core.ActionMerge, []core.NodeID{ln.id, rn.id, pn.id}, keys...)

	h.a.adopt(left, rn.children...)
	pn.keys = removeAt(pn.keys, sep)
	pn.children = removeAt(pn.children, sep+1)
	h.a.release(right)
	h.count--
}
