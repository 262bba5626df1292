// SPDX-License-Identifier: MIT
// Package: lvheap/core
//
// types.go — sentinel errors, the PriorityQueue contract and node identifiers.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for every lvheap structure.
var (
	// ErrEmpty indicates extract or peek on a structure that holds no elements.
	ErrEmpty = errors.New("core: structure is empty")

	// ErrCapacityExceeded indicates an insert beyond the configured node cap.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrInvalidInput indicates a missing or non-numeric value.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrInvariantViolation indicates a failed internal consistency check.
	// Correct algorithm code never produces it.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// NodeID identifies a node for highlighting. Array-backed structures use the
// array index; tree structures assign a stable id when a node is created.
type NodeID int

// NoNode marks the absence of a node (for example Snapshot.Min of an empty structure).
const NoNode NodeID = -1

// PriorityQueue is the surface every lvheap structure exposes.
type PriorityQueue interface {
	// Insert adds value and returns the steps it took.
	Insert(value int) (Trace, error)

	// ExtractMin removes and returns the minimum together with its steps.
	ExtractMin() (int, Trace, error)

	// PeekMin returns the minimum without removing it.
	PeekMin() (int, error)

	// Size returns the number of stored values.
	Size() int

	// Snapshot returns the structural view used for drawing.
	Snapshot() Snapshot

	// Validate checks every structural invariant.
	Validate() error
}

// Violations wraps a collected set of invariant failures in ErrInvariantViolation.
// It returns nil when err is nil.
func Violations(structure string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s: %v", ErrInvariantViolation, structure, err)
}
