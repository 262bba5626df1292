// SPDX-License-Identifier: MIT
// Package: lvheap/twothree
//
// validate.go — structural self-check.

package twothree

import (
	"fmt"

	"cloudeng.io/errors"

	"github.com/katalvlaran/lvheap/core"
)

// Validate checks the 2-3 tree invariants: 1..2 sorted keys per node,
// keys+1 children on internal nodes, equal leaf depth, ordered in-order
// traversal, consistent parent links and key/node counters.
//
// The node cap is not checked: a split cascade may legitimately push the
// node count past the cap that was respected when the insert started.
func (h *Heap) Validate() error {
	if h.root == nilIndex {
		if h.size != 0 || h.count != 0 {
			return core.Violations(Name, fmt.Errorf("empty tree with size=%d nodes=%d", h.size, h.count))
		}
		return nil
	}

	var (
		errs     errors.M
		inorder  []int
		keys     int
		nodes    int
		leafDeep = -1
	)
	if p := h.a.nodes[h.root].parent; p != nilIndex {
		errs.Append(fmt.Errorf("root #%d has parent slot %d", h.a.nodes[h.root].id, p))
	}

	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := &h.a.nodes[i]
		nodes++
		keys += len(n.keys)
		if !n.live {
			errs.Append(fmt.Errorf("slot %d reachable but released", i))
			return
		}
		if len(n.keys) < 1 || len(n.keys) > 2 {
			errs.Append(fmt.Errorf("node #%d holds %d keys", n.id, len(n.keys)))
		}
		if len(n.keys) == 2 && n.keys[0] > n.keys[1] {
			errs.Append(fmt.Errorf("node #%d keys %v out of order", n.id, n.keys))
		}
		if n.leaf() {
			switch {
			case leafDeep < 0:
				leafDeep = depth
			case leafDeep != depth:
				errs.Append(fmt.Errorf("leaf #%d at depth %d, want %d", n.id, depth, leafDeep))
			}
			inorder = append(inorder, n.keys...)
			return
		}
		if len(n.children) != len(n.keys)+1 {
			errs.Append(fmt.Errorf("node #%d has %d keys and %d children", n.id, len(n.keys), len(n.children)))
		}
		for ci, c := range n.children {
			if h.a.nodes[c].parent != i {
				errs.Append(fmt.Errorf("child #%d of #%d has wrong parent", h.a.nodes[c].id, n.id))
			}
			walk(c, depth+1)
			if ci < len(n.keys) {
				inorder = append(inorder, n.keys[ci])
			}
		}
	}
	walk(h.root, 0)

	for i := 1; i < len(inorder); i++ {
		if inorder[i-1] > inorder[i] {
			errs.Append(fmt.Errorf("in-order keys decrease at %d: %d > %d", i, inorder[i-1], inorder[i]))
			break
		}
	}
	if keys != h.size {
		errs.Append(fmt.Errorf("reachable keys %d, size %d", keys, h.size))
	}
	if nodes != h.count {
		errs.Append(fmt.Errorf("reachable nodes %d, count %d", nodes, h.count))
	}
	live := 0
	for _, n := range h.a.nodes {
		if n.live {
			live++
		}
	}
	if live != h.count {
		errs.Append(fmt.Errorf("live slots %d, count %d", live, h.count))
	}

	return core.Violations(Name, errs.Err())
}
