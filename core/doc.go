// Package core declares the contract shared by every lvheap priority queue:
// sentinel errors, functional options, the step trace an operation records,
// and the structural snapshot a presentation layer draws from.
//
// The four structures (binaryheap, binomial, fibonacci, twothree) share no
// implementation. They agree only on this surface:
//
//	Insert(value int) (Trace, error)      // O(log n) or O(1) amortized, see each package
//	ExtractMin() (int, Trace, error)      // ErrEmpty on an empty structure
//	PeekMin() (int, error)                // ErrEmpty on an empty structure
//	Size() int
//	Snapshot() Snapshot                   // state after the last full operation
//	Validate() error                      // ErrInvariantViolation with every broken rule
//
// Traces:
//
//	Every mutating operation runs synchronously to completion and returns the
//	ordered list of atomic sub-steps it passed through. Each Step names a Kind
//	(Compare, SwapOrLink, Structural), an Action label and the NodeIDs involved.
//	A failed operation returns an empty Trace and leaves the structure untouched.
//
// Options:
//
//	– WithCapacity(n)   n > 0 caps the structure, n == 0 removes the cap,
//	                    n < 0 is recorded as ErrOptionViolation.
//	– WithOnStep(fn)    fn observes each step of a committed operation, in order.
//
// Errors:
//
//	ErrEmpty              – extract/peek on an empty structure
//	ErrCapacityExceeded   – insert beyond the configured cap
//	ErrInvalidInput       – textual value that is not an integer (ParseValue)
//	ErrInvariantViolation – internal consistency check failed
//	ErrOptionViolation    – invalid functional option
package core
