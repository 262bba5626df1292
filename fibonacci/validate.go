// SPDX-License-Identifier: MIT
// Package: lvheap/fibonacci
//
// validate.go — structural self-check.

package fibonacci

import (
	"fmt"

	"cloudeng.io/errors"

	"github.com/katalvlaran/lvheap/core"
)

// Validate checks, collecting every failure:
//   - every sibling list is a consistent circular list;
//   - roots have no parent and are unmarked; children point at their parent;
//   - degree equals the child count and heap order holds;
//   - min is a root holding the smallest root value;
//   - the live node count equals Size and respects the cap.
func (h *Heap) Validate() error {
	errs := errors.M{}
	count := 0

	var walk func(list []int, parent int)
	walk = func(list []int, parent int) {
		for _, i := range list {
			n := h.a.nodes[i]
			count++
			if !n.live {
				errs.Append(fmt.Errorf("slot %d is free but linked", i))
				continue
			}
			if h.a.nodes[n.right].left != i || h.a.nodes[n.left].right != i {
				errs.Append(fmt.Errorf("node #%d has broken sibling links", n.id))
			}
			if n.parent != parent {
				errs.Append(fmt.Errorf("node #%d parent is %d, want %d", n.id, n.parent, parent))
			}
			if parent == nilIndex && n.marked {
				errs.Append(fmt.Errorf("root #%d is marked", n.id))
			}
			if parent != nilIndex && n.value < h.a.nodes[parent].value {
				errs.Append(fmt.Errorf("node #%d value %d below parent value %d", n.id, n.value, h.a.nodes[parent].value))
			}
			kids := h.a.list(n.child)
			if len(kids) != n.degree {
				errs.Append(fmt.Errorf("node #%d degree %d, has %d children", n.id, n.degree, len(kids)))
			}
			walk(kids, i)
		}
	}
	roots := h.a.list(h.head)
	walk(roots, nilIndex)

	switch {
	case len(roots) == 0 && h.min != nilIndex:
		errs.Append(fmt.Errorf("min set on an empty heap"))
	case len(roots) > 0 && h.min == nilIndex:
		errs.Append(fmt.Errorf("min unset on a non-empty heap"))
	case len(roots) > 0:
		if h.a.nodes[h.min].parent != nilIndex {
			errs.Append(fmt.Errorf("min #%d is not a root", h.a.nodes[h.min].id))
		}
		for _, r := range roots {
			if h.a.nodes[r].value < h.a.nodes[h.min].value {
				errs.Append(fmt.Errorf("root #%d value %d below min value %d",
					h.a.nodes[r].id, h.a.nodes[r].value, h.a.nodes[h.min].value))
			}
		}
	}
	if count != h.size {
		errs.Append(fmt.Errorf("size %d, reachable nodes %d", h.size, count))
	}
	if live := len(h.a.nodes) - len(h.a.free); live != h.size {
		errs.Append(fmt.Errorf("size %d, live arena slots %d", h.size, live))
	}
	if h.cfg.Capacity != core.Unbounded && h.size > h.cfg.Capacity {
		errs.Append(fmt.Errorf("%d nodes exceed cap %d", h.size, h.cfg.Capacity))
	}

	return core.Violations(Name, errs.Err())
}
