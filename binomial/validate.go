// SPDX-License-Identifier: MIT
// Package: lvheap/binomial
//
// validate.go — structural self-check.

package binomial

import (
	"fmt"

	"cloudeng.io/errors"

	"github.com/katalvlaran/lvheap/core"
)

// Validate checks, collecting every failure:
//   - root degrees strictly increase;
//   - every tree is a binomial tree (child i of any node has degree i);
//   - heap order;
//   - size equals Σ 2^degree over the roots and respects the cap.
func (h *Heap) Validate() error {
	errs := errors.M{}
	total := 0
	for i, r := range h.roots {
		if i > 0 && h.roots[i-1].degree() >= r.degree() {
			errs.Append(fmt.Errorf("root %d degree %d not above previous %d", i, r.degree(), h.roots[i-1].degree()))
		}
		total += 1 << r.degree()
		checkTree(r, &errs)
	}
	if total != h.size {
		errs.Append(fmt.Errorf("size %d, roots account for %d", h.size, total))
	}
	if h.cfg.Capacity != core.Unbounded && h.size > h.cfg.Capacity {
		errs.Append(fmt.Errorf("%d nodes exceed cap %d", h.size, h.cfg.Capacity))
	}

	return core.Violations(Name, errs.Err())
}

func checkTree(n *node, errs *errors.M) {
	for i, c := range n.children {
		if c.degree() != i {
			errs.Append(fmt.Errorf("node #%d child %d has degree %d", n.id, i, c.degree()))
		}
		if c.value < n.value {
			errs.Append(fmt.Errorf("node #%d value %d below parent #%d value %d", c.id, c.value, n.id, n.value))
		}
		checkTree(c, errs)
	}
}
