// Package fibonacci implements a Fibonacci min-heap on an index arena.
//
// Representation:
//
//   - Nodes live in a slice and refer to each other by index: parent, first
//     child, and left/right neighbors of a circular doubly-linked sibling list.
//     There are no pointer cycles; link and unlink are O(1) index updates.
//   - The root list is one such circular list; head is its first root in
//     drawing order and min points at the root holding the minimum.
//   - Freed slots are recycled through a free list; node ids are never reused.
//
// Operations:
//
//	Insert(v)     new singleton root at the tail of the root list, min updated
//	              when v is strictly smaller. One highlight step.        O(1)
//	ExtractMin()  detach min, promote its children to roots (parent and mark
//	              cleared), then consolidate.                            O(log n) amortized
//	consolidate   degree table: while another root has the same degree, link
//	              the larger root under the smaller (equal values: the root
//	              seen first stays on top). Survivors form the new root list
//	              in ascending degree order; min is recomputed among them.
//
// After consolidation no two roots share a degree. Between extractions, inserts
// may add any number of degree-0 roots.
//
// Mark bits are modeled for fidelity with decrease-key based variants; under
// Insert and ExtractMin alone they are always false.
//
// The default capacity is 15 nodes (DefaultCapacity); see core.WithCapacity.
package fibonacci
