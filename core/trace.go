// SPDX-License-Identifier: MIT
// Package: lvheap/core
//
// trace.go — step descriptors and the recorder that collects them.

package core

import (
	"fmt"
	"strings"
)

// Kind classifies a step for the animator.
type Kind int

const (
	// Compare highlights nodes whose values are being compared.
	Compare Kind = iota

	// SwapOrLink highlights nodes exchanging positions or being linked.
	SwapOrLink

	// Structural highlights nodes created, removed, split or merged.
	Structural
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Compare:
		return "compare"
	case SwapOrLink:
		return "swap-or-link"
	case Structural:
		return "structural-change"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action names what a step does within its Kind.
type Action string

// Actions emitted by the lvheap structures.
const (
	ActionCompare   Action = "compare"    // two values compared
	ActionDescend   Action = "descend"    // search path visits a node
	ActionSwap      Action = "swap"       // array elements exchanged
	ActionLink      Action = "link"       // tree linked under another root
	ActionInsert    Action = "insert"     // new node or key placed
	ActionRemove    Action = "remove"     // node or key removed
	ActionMoveLast  Action = "move-last"  // last array element moved to the root
	ActionPromote   Action = "promote"    // children become roots
	ActionSplit     Action = "split"      // overflowing node split in two
	ActionGrow      Action = "grow"       // new root above the old one
	ActionBorrow    Action = "borrow"     // key rotated from a sibling through the parent
	ActionMerge     Action = "merge"      // two siblings fused around a separator
	ActionShrink    Action = "shrink"     // empty root replaced by its only child
	ActionSelectMin Action = "select-min" // new minimum chosen
)

// Step is one atomic sub-step of an operation.
type Step struct {
	Kind   Kind
	Action Action
	Nodes  []NodeID // nodes involved, most significant first
	Values []int    // values involved, if any
}

// String renders the step on one line, e.g. "swap-or-link/swap nodes=[5 2] values=[1 8]".
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	b.WriteByte('/')
	b.WriteString(string(s.Action))
	fmt.Fprintf(&b, " nodes=%v", s.Nodes)
	if len(s.Values) > 0 {
		fmt.Fprintf(&b, " values=%v", s.Values)
	}

	return b.String()
}

// Trace is the ordered list of steps one operation passed through.
type Trace []Step

// Count returns how many steps of kind k the trace holds.
func (t Trace) Count(k Kind) int {
	n := 0
	for _, s := range t {
		if s.Kind == k {
			n++
		}
	}

	return n
}

// Actions returns the action of every step, in order.
func (t Trace) Actions() []Action {
	out := make([]Action, len(t))
	for i, s := range t {
		out[i] = s.Action
	}

	return out
}

// Recorder buffers the steps of one operation. Nothing reaches the OnStep
// hook until Commit, so a rejected or rolled back operation stays invisible.
type Recorder struct {
	steps  Trace
	onStep func(Step)
}

// NewRecorder starts an empty recording that will report to onStep on Commit.
func NewRecorder(onStep func(Step)) *Recorder {
	return &Recorder{onStep: onStep}
}

// Add appends a step. values is copied; structures may pass live key slices.
func (r *Recorder) Add(kind Kind, action Action, nodes []NodeID, values ...int) {
	r.steps = append(r.steps, Step{Kind: kind, Action: action, Nodes: nodes, Values: append([]int(nil), values...)})
}

// Compare records a comparison between nodes a and b holding va and vb.
func (r *Recorder) Compare(a, b NodeID, va, vb int) {
	r.Add(Compare, ActionCompare, []NodeID{a, b}, va, vb)
}

// Len returns the number of buffered steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Commit hands every buffered step to the hook and returns the trace.
func (r *Recorder) Commit() Trace {
	if r.onStep != nil {
		for _, s := range r.steps {
			r.onStep(s)
		}
	}
	if r.steps == nil {
		return Trace{}
	}

	return r.steps
}

// Discard drops the buffered steps and returns an empty trace.
func (r *Recorder) Discard() Trace {
	r.steps = nil
	return Trace{}
}
