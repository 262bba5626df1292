// SPDX-License-Identifier: MIT
// Package: lvheap/fibonacci
//
// arena.go — node storage and circular sibling-list primitives.

package fibonacci

import "github.com/katalvlaran/lvheap/core"

// nilIndex marks an absent link.
const nilIndex = -1

// node is one arena slot. All links are arena indices.
type node struct {
	id     core.NodeID
	value  int
	parent int // non-owning, nilIndex for roots
	child  int // any child; its sibling list holds all children
	left   int
	right  int
	degree int
	marked bool
	live   bool
}

// arena owns every node of one heap.
type arena struct {
	nodes  []node
	free   []int
	nextID core.NodeID
}

// alloc stores a singleton node holding value and returns its index.
func (a *arena) alloc(value int) int {
	n := node{
		id:     a.nextID,
		value:  value,
		parent: nilIndex,
		child:  nilIndex,
		live:   true,
	}
	a.nextID++

	var i int
	if k := len(a.free); k > 0 {
		i = a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[i] = n
	} else {
		i = len(a.nodes)
		a.nodes = append(a.nodes, n)
	}
	a.nodes[i].left, a.nodes[i].right = i, i

	return i
}

// release returns slot i to the free list.
func (a *arena) release(i int) {
	a.nodes[i] = node{parent: nilIndex, child: nilIndex, left: nilIndex, right: nilIndex}
	a.free = append(a.free, i)
}

// isolate makes i a one-element circular list.
func (a *arena) isolate(i int) {
	a.nodes[i].left, a.nodes[i].right = i, i
}

// insertBefore splices the singleton x into anchor's list just before anchor,
// i.e. at the tail when anchor is the list head.
func (a *arena) insertBefore(anchor, x int) {
	l := a.nodes[anchor].left
	a.nodes[x].left = l
	a.nodes[x].right = anchor
	a.nodes[l].right = x
	a.nodes[anchor].left = x
}

// unlink removes x from its list and returns x's former right neighbor,
// or nilIndex if x was alone.
func (a *arena) unlink(x int) int {
	l, r := a.nodes[x].left, a.nodes[x].right
	a.isolate(x)
	if r == x {
		return nilIndex
	}
	a.nodes[l].right = r
	a.nodes[r].left = l

	return r
}

// list returns the indices of start's circular list, beginning at start.
func (a *arena) list(start int) []int {
	if start == nilIndex {
		return nil
	}
	out := []int{start}
	for i := a.nodes[start].right; i != start; i = a.nodes[i].right {
		out = append(out, i)
	}

	return out
}

// link makes root c a child of root p: c's parent is set, its mark cleared,
// it joins the tail of p's child list and p's degree grows by one.
func (a *arena) link(c, p int) {
	a.isolate(c)
	a.nodes[c].parent = p
	a.nodes[c].marked = false
	if a.nodes[p].child == nilIndex {
		a.nodes[p].child = c
	} else {
		a.insertBefore(a.nodes[p].child, c)
	}
	a.nodes[p].degree++
}
