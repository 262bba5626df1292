// Package twothree implements a min-priority queue on a 2-3 search tree.
//
// The minimum is always the first key of the leftmost leaf, so there is no
// min pointer: PeekMin walks child[0] down the height of the tree.
//
// Invariants:
//
//	(a) all leaves sit at the same depth;
//	(b) a node holds 1 or 2 sorted keys and, unless it is a leaf, keys+1 children;
//	(c) for keys [k]:      keys(child0) ≤ k ≤ keys(child1);
//	    for keys [k1, k2]: keys(child0) ≤ k1 ≤ keys(child1) ≤ k2 ≤ keys(child2).
//	    Duplicates are allowed and always descend to the right of an equal key.
//
// Insert:
//
//	Descend (v < k1 → child0; one key or v < k2 → child1; else child2), add v
//	to the leaf, then split every overflowing 3-key node on the way back up:
//	the middle key moves to the parent, [k1] with the first two children stays
//	as the left node, [k3] with the rest becomes a new right node. Splitting
//	the root grows the tree by one level.
//
// ExtractMin:
//
//	Remove the first key of the leftmost leaf. An emptied node is fixed by, in
//	order of preference: borrowing from the left sibling, borrowing from the
//	right sibling, merging with the right sibling, merging with the left
//	sibling. A merge that empties the parent continues one level up; an empty
//	root with one child is replaced by it and the tree shrinks by one level.
//
// Nodes live in an index arena; parent links are indices, not pointers.
//
// The default capacity is 10 nodes (DefaultCapacity); the cap counts tree
// nodes, not keys, and is checked before an insert starts.
package twothree
