// SPDX-License-Identifier: MIT
// Package: lvheap/core
//
// snapshot.go — structural views taken at operation boundaries.

package core

import (
	"fmt"
	"strings"
)

// Node is one drawn node of a snapshot.
//
// Binary, binomial and Fibonacci nodes carry a single key; 2-3 nodes carry one
// or two. Degree and Marked are meaningful for the binomial and Fibonacci forests.
type Node struct {
	ID       NodeID
	Keys     []int
	Degree   int
	Marked   bool
	Children []Node
}

// Snapshot is a deep, immutable copy of a structure's shape.
type Snapshot struct {
	// Structure names the producing structure ("binary", "binomial", ...).
	Structure string

	// Size is the number of stored values.
	Size int

	// Min is the node holding the minimum, NoNode when empty.
	Min NodeID

	// Roots is the forest in drawing order (a single root for trees).
	Roots []Node

	// Values is the backing array of array-based structures, nil otherwise.
	Values []int
}

// NodeCount returns the number of nodes across all roots.
func (s Snapshot) NodeCount() int {
	n := 0
	var walk func(Node)
	walk = func(nd Node) {
		n++
		for _, c := range nd.Children {
			walk(c)
		}
	}
	for _, r := range s.Roots {
		walk(r)
	}

	return n
}

// String renders the snapshot as an indented outline:
//
//	fibonacci size=3 min=#0
//	#0 [1] deg=1
//	  #2 [7]
//	#1 [4]
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s size=%d", s.Structure, s.Size)
	if s.Min != NoNode {
		fmt.Fprintf(&b, " min=#%d", s.Min)
	}
	b.WriteByte('\n')
	if s.Values != nil {
		fmt.Fprintf(&b, "array %v\n", s.Values)
	}
	var walk func(Node, int)
	walk = func(nd Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "#%d %v", nd.ID, nd.Keys)
		if nd.Degree > 0 {
			fmt.Fprintf(&b, " deg=%d", nd.Degree)
		}
		if nd.Marked {
			b.WriteString(" marked")
		}
		b.WriteByte('\n')
		for _, c := range nd.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range s.Roots {
		walk(r, 0)
	}

	return b.String()
}
