// SPDX-License-Identifier: MIT
// Package: lvheap/core
//
// options.go — functional options shared by all structures.
//
// Invalid values are recorded on Options and surfaced as ErrOptionViolation by
// the first operation on the structure, never by a panic.

package core

import "fmt"

// Unbounded disables the capacity check.
const Unbounded = 0

// Options holds the resolved configuration of one structure instance.
type Options struct {
	// Capacity is the node cap; Unbounded disables it.
	Capacity int

	// OnStep observes each step of a committed operation, in trace order.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// Option configures a structure at construction time.
type Option func(*Options)

// DefaultOptions returns Options with the given cap and a no-op OnStep hook.
func DefaultOptions(capacity int) Options {
	return Options{
		Capacity: capacity,
		OnStep:   func(Step) {},
	}
}

// NewOptions resolves opts over DefaultOptions(capacity), last option wins.
func NewOptions(capacity int, opts ...Option) Options {
	o := DefaultOptions(capacity)
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCapacity sets the node cap.
//
//	n > 0: at most n nodes
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithOnStep registers a hook called for every step of a committed operation.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Err returns the error recorded while applying options, if any.
func (o Options) Err() error { return o.err }

// Full reports whether used nodes already reach the cap.
func (o Options) Full(used int) bool {
	return o.Capacity != Unbounded && used >= o.Capacity
}
