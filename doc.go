// Package lvheap is a set of min-priority queues that explain themselves:
// every Insert and ExtractMin returns the ordered list of steps it took.
//
// 🚀 What is inside?
//
//	• binaryheap/ — array heap: sift-up on insert, sift-down on extract
//	• binomial/   — forest of binomial trees, one per degree, merged by union
//	• fibonacci/  — lazy root list, consolidation only on extract
//	• twothree/   — 2-3 search tree, minimum in the leftmost leaf
//	• core/       — shared contract: errors, options, Step/Trace, Snapshot
//	• session/    — numbered versions, bounded history, zap logging
//	• replay/     — paced step playback with context cancellation
//	• workload/   — seeded insert/extract sequences
//	• cmd/heapviz — command line driver (flags or a TOML scenario)
//
// ✨ Guarantees
//
//   - An operation either commits a complete trace or changes nothing.
//   - Identical inputs produce identical traces.
//   - Validate() reports every broken structural invariant at once.
//
// Each step is tagged compare, swap-or-link or structural-change and names
// the nodes it touched, so a front end can animate an operation without
// knowing which structure produced it:
//
//	h, _ := binaryheap.NewFromSlice([]int{3, 9, 8, 12, 15})
//	tr, _ := h.Insert(1)
//	// structural-change/insert nodes=[5] values=[1]
//	// compare/compare          nodes=[5 2] values=[1 8]
//	// swap-or-link/swap        nodes=[5 2] values=[1 8]
//	// ...
//
//	go get github.com/katalvlaran/lvheap
package lvheap
