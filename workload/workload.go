// SPDX-License-Identifier: MIT
// Package workload generates deterministic operation sequences for lvheap
// structures: random inserts like a "random value" button, interleaved with
// extract-min calls.
//
// Determinism:
//   - Same seed ⇒ identical sequence across platforms.
//   - Seed 0 maps to defaultSeed; there is no time-based source anywhere.
//
// math/rand.Rand is not goroutine-safe; a Generator must not be shared across goroutines.
package workload

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvheap/core"
)

// ErrOptionViolation is returned by Generate when an Option was invalid.
var ErrOptionViolation = errors.New("workload: invalid option supplied")

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Defaults for value range and op mix. The range matches a [0,100) random button.
const (
	DefaultMinValue    = 0
	DefaultMaxValue    = 100 // exclusive
	DefaultInsertRatio = 0.6
)

// OpKind selects the operation of an Op.
type OpKind int

const (
	// Insert adds Op.Value.
	Insert OpKind = iota
	// ExtractMin removes the minimum.
	ExtractMin
)

// String returns "insert" or "extract".
func (k OpKind) String() string {
	if k == Insert {
		return "insert"
	}

	return "extract"
}

// Op is one generated operation.
type Op struct {
	Kind  OpKind
	Value int // meaningful for Insert only
}

// String renders the op in script syntax ("insert 5", "extract").
func (o Op) String() string {
	if o.Kind == Insert {
		return fmt.Sprintf("insert %d", o.Value)
	}

	return "extract"
}

// Options configures Generate.
type Options struct {
	Seed        int64
	MinValue    int     // inclusive
	MaxValue    int     // exclusive, > MinValue
	InsertRatio float64 // probability of Insert, in [0,1]

	err error
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns seed 0 (→ defaultSeed), values in [0,100) and a 60% insert mix.
func DefaultOptions() Options {
	return Options{
		MinValue:    DefaultMinValue,
		MaxValue:    DefaultMaxValue,
		InsertRatio: DefaultInsertRatio,
	}
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithValueRange draws insert values from [lo, hi).
func WithValueRange(lo, hi int) Option {
	return func(o *Options) {
		if hi <= lo {
			o.err = fmt.Errorf("%w: empty value range [%d,%d)", ErrOptionViolation, lo, hi)
			return
		}
		o.MinValue, o.MaxValue = lo, hi
	}
}

// WithInsertRatio sets the probability that a generated op is an insert.
func WithInsertRatio(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: insert ratio %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.InsertRatio = p
	}
}

// NewRand returns a deterministic *rand.Rand; seed==0 uses defaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomValue draws a value in [DefaultMinValue, DefaultMaxValue).
func RandomValue(rng *rand.Rand) int {
	if rng == nil {
		rng = NewRand(0)
	}

	return DefaultMinValue + rng.Intn(DefaultMaxValue-DefaultMinValue)
}

// Generate returns n ops. Extracts are only emitted while the simulated
// structure is non-empty, so every op is valid on an unbounded structure.
func Generate(n int, opts ...Option) ([]Op, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative op count %d", ErrOptionViolation, n)
	}

	rng := NewRand(cfg.Seed)
	ops := make([]Op, 0, n)
	held := 0
	for i := 0; i < n; i++ {
		if held > 0 && rng.Float64() >= cfg.InsertRatio {
			ops = append(ops, Op{Kind: ExtractMin})
			held--
			continue
		}
		v := cfg.MinValue + rng.Intn(cfg.MaxValue-cfg.MinValue)
		ops = append(ops, Op{Kind: Insert, Value: v})
		held++
	}

	return ops, nil
}

// Apply runs ops against q in order and returns the extracted values.
// It stops at the first error, wrapping it with the failing op index.
func Apply(q core.PriorityQueue, ops []Op) ([]int, error) {
	var out []int
	for i, op := range ops {
		switch op.Kind {
		case Insert:
			if _, err := q.Insert(op.Value); err != nil {
				return out, fmt.Errorf("workload: op %d (%s): %w", i, op, err)
			}
		case ExtractMin:
			v, _, err := q.ExtractMin()
			if err != nil {
				return out, fmt.Errorf("workload: op %d (%s): %w", i, op, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
