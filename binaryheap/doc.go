// Package binaryheap implements an array-backed binary min-heap whose
// operations report every comparison and swap they perform.
//
// Overview:
//
//   - Values live in a slice; index 0 holds the minimum.
//   - parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2.
//   - Heap order: for every i > 0, values[parent(i)] ≤ values[i].
//
// Operations:
//
//	Insert(v)     append, then sift up while the parent is strictly greater   O(log n)
//	ExtractMin()  move the last value to the root, then sift down             O(log n)
//	PeekMin()     values[0]                                                   O(1)
//
// Tie-break: when both children are equal and smaller than the parent, the
// left child is chosen, so traces are deterministic.
//
// Node identifiers in traces and snapshots are array indices.
//
// The default capacity is 15 values (DefaultCapacity); see core.WithCapacity.
package binaryheap
