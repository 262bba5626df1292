// Package binomial implements a binomial min-heap: a forest of binomial
// trees whose root degrees are strictly increasing, like the set bits of the
// element count.
//
// Definitions:
//
//   - A binomial tree B_k has 2^k nodes; its root has k children which are,
//     in order, B_0, B_1, …, B_{k-1}.
//   - degree(node) = number of children.
//   - Heap order: a node's value is ≤ every descendant's value.
//
// Algorithms:
//
//	mergeTrees(a, b)  the smaller root adopts the other as its last child;
//	                  equal roots: a wins.                                    O(1)
//	union(h1, h2)     stable merge of both root lists by degree, then carry
//	                  propagation: adjacent equal degrees are linked until all
//	                  degrees differ. When three equal degrees meet, the first
//	                  is skipped and the latter two are linked, which keeps the
//	                  list ascending.                                         O(log n)
//	Insert(v)         union with a singleton B_0.                             O(log n)
//	ExtractMin()      linear scan of the roots for the minimum, detach it,
//	                  and union its children (already ascending by degree,
//	                  since a link appends the new child) back in.           O(log n)
//
// Every union records the trees it links in a journal. ExtractMin checks the
// distinct-degree post-condition before committing; a failure undoes the
// journal, leaves the heap exactly as it was and returns ErrInvariantViolation.
//
// The default capacity is 15 nodes (DefaultCapacity); see core.WithCapacity.
package binomial
