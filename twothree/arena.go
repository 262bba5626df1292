// SPDX-License-Identifier: MIT
// Package: lvheap/twothree
//
// arena.go — node storage; every link is an arena index.

package twothree

import "github.com/katalvlaran/lvheap/core"

// nilIndex marks an absent link.
const nilIndex = -1

// node is one arena slot. keys and children are owned by the node; no two
// nodes share a backing array.
type node struct {
	id       core.NodeID
	keys     []int
	children []int
	parent   int // non-owning, nilIndex for the root
	live     bool
}

func (n *node) leaf() bool { return len(n.children) == 0 }

type arena struct {
	nodes  []node
	free   []int
	nextID core.NodeID
}

// alloc stores a node with the given keys and children (both copied) and
// re-parents the children.
func (a *arena) alloc(keys, children []int) int {
	n := node{
		id:       a.nextID,
		keys:     append([]int(nil), keys...),
		children: append([]int(nil), children...),
		parent:   nilIndex,
		live:     true,
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
	for _, c := range children {
		a.nodes[c].parent = i
	}

	return i
}

func (a *arena) release(i int) {
	a.nodes[i] = node{parent: nilIndex}
	a.free = append(a.free, i)
}

// childPos returns the position of c in its parent's child list.
func (a *arena) childPos(c int) int {
	p := a.nodes[c].parent
	for i, x := range a.nodes[p].children {
		if x == c {
			return i
		}
	}

	return -1
}

// adopt appends children to p and re-parents them.
func (a *arena) adopt(p int, children ...int) {
	a.nodes[p].children = append(a.nodes[p].children, children...)
	for _, c := range children {
		a.nodes[c].parent = p
	}
}

func insertAt(s []int, i, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

func removeAt(s []int, i int) []int {
	return append(s[:i], s[i+1:]...)
}
