// SPDX-License-Identifier: MIT
// Package: lvheap/binomial
//
// union.go — tree linking, root-list union and the link journal.

package binomial

import "github.com/katalvlaran/lvheap/core"

// node is one binomial tree node. A node owns its children; there are no
// back-references, so the forest is a plain tree of pointers.
type node struct {
	id       core.NodeID
	value    int
	children []*node // B_0 … B_{k-1}, in link order
}

// degree returns the number of children.
func (n *node) degree() int { return len(n.children) }

// journal records every parent that gained a child during one operation,
// in link order, so the operation can be undone.
type journal struct {
	parents []*node
}

// undo detaches the last child of every recorded parent, newest first.
func (j *journal) undo() {
	for i := len(j.parents) - 1; i >= 0; i-- {
		p := j.parents[i]
		last := len(p.children) - 1
		p.children[last] = nil
		p.children = p.children[:last]
	}
	j.parents = nil
}

// mergeTrees links two trees of equal degree and returns the surviving root.
// The root with the smaller value adopts the other as its last child; on equal
// values a wins.
func mergeTrees(a, b *node, rec *core.Recorder, j *journal) *node {
	rec.Compare(a.id, b.id, a.value, b.value)
	if b.value < a.value {
		a, b = b, a
	}
	a.children = append(a.children, b)
	j.parents = append(j.parents, a)
	rec.Add(core.SwapOrLink, core.ActionLink, []core.NodeID{a.id, b.id}, a.value, b.value)

	return a
}

// union merges two degree-ascending root lists into one with distinct degrees.
// Neither input slice is modified.
func union(h1, h2 []*node, rec *core.Recorder, j *journal) []*node {
	// 1) Stable merge keyed on degree; h1 first on ties.
	merged := make([]*node, 0, len(h1)+len(h2))
	i, k := 0, 0
	for i < len(h1) && k < len(h2) {
		if h1[i].degree() <= h2[k].degree() {
			merged = append(merged, h1[i])
			i++
		} else {
			merged = append(merged, h2[k])
			k++
		}
	}
	merged = append(merged, h1[i:]...)
	merged = append(merged, h2[k:]...)

	// 2) Carry propagation. At any position x at most three roots share a
	//    degree; with three, x is skipped so the linked result stays in order.
	x := 0
	for x+1 < len(merged) {
		next := merged[x+1]
		if merged[x].degree() != next.degree() ||
			(x+2 < len(merged) && merged[x+2].degree() == merged[x].degree()) {
			x++
			continue
		}
		merged[x] = mergeTrees(merged[x], next, rec, j)
		merged = append(merged[:x+1], merged[x+2:]...)
	}

	return merged
}
