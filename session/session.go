// SPDX-License-Identifier: MIT
// Package: lvheap/session
//
// session.go — versioned operations over one priority queue.

package session

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvheap/core"
)

// Sentinel errors.
var (
	// ErrBusy is returned for a mutation requested while a playback is running.
	ErrBusy = errors.New("session: playback in progress")

	// ErrOptionViolation indicates an invalid session option.
	ErrOptionViolation = errors.New("session: invalid option")
)

// DefaultHistoryLimit is the number of versions kept when no WithHistoryLimit is given.
const DefaultHistoryLimit = 10

// Op names the operation that produced a Version.
type Op string

// Operations.
const (
	OpNone       Op = "none"
	OpInsert     Op = "insert"
	OpExtractMin Op = "extract"
	OpPeekMin    Op = "peek"
)

// Version is the observable result of one operation.
type Version struct {
	// Seq counts successful mutations; PeekMin reports the current Seq.
	Seq uint64

	Op Op

	// Value is the inserted, extracted or peeked value.
	Value int

	Trace    core.Trace
	Snapshot core.Snapshot
}

// Options configures a Session.
type Options struct {
	// HistoryLimit bounds History(); must be > 0.
	HistoryLimit int

	// Logger receives one entry per operation. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Validate runs the structure's Validate after every mutation.
	Validate bool

	err error
}

// Option configures a Session.
type Option func(*Options)

// DefaultOptions returns the session defaults.
func DefaultOptions() Options {
	return Options{
		HistoryLimit: DefaultHistoryLimit,
		Logger:       zap.NewNop(),
	}
}

// WithHistoryLimit sets how many versions History keeps.
func WithHistoryLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: history limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.HistoryLimit = n
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithValidation enables a Validate pass after every mutation.
func WithValidation(on bool) Option {
	return func(o *Options) { o.Validate = on }
}

// Session owns one structure and its version history.
type Session struct {
	mu      sync.Mutex
	q       core.PriorityQueue
	opts    Options
	log     *zap.Logger
	seq     uint64
	history []Version
	playing bool
}

// New wraps q. It fails with ErrOptionViolation on an invalid option.
func New(q core.PriorityQueue, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	structure := q.Snapshot().Structure
	return &Session{
		q:    q,
		opts: o,
		log:  o.Logger.With(zap.String("structure", structure)),
	}, nil
}

// Insert adds value and records the resulting version.
func (s *Session) Insert(value int) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(OpInsert); err != nil {
		return Version{}, err
	}
	tr, err := s.q.Insert(value)
	if err != nil {
		return Version{}, s.reject(OpInsert, err)
	}

	return s.commit(OpInsert, value, tr)
}

// InsertInput parses raw as an integer and inserts it. Text that is not an
// integer fails with core.ErrInvalidInput and changes nothing.
func (s *Session) InsertInput(raw string) (Version, error) {
	v, err := core.ParseValue(raw)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return Version{}, s.reject(OpInsert, err)
	}

	return s.Insert(v)
}

// ExtractMin removes the minimum and records the resulting version.
func (s *Session) ExtractMin() (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(OpExtractMin); err != nil {
		return Version{}, err
	}
	v, tr, err := s.q.ExtractMin()
	if err != nil {
		return Version{}, s.reject(OpExtractMin, err)
	}

	return s.commit(OpExtractMin, v, tr)
}

// PeekMin reports the minimum without recording a version. It is allowed
// during playback.
func (s *Session) PeekMin() (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.q.PeekMin()
	if err != nil {
		return Version{}, s.reject(OpPeekMin, err)
	}

	return Version{Seq: s.seq, Op: OpPeekMin, Value: v, Trace: core.Trace{}, Snapshot: s.q.Snapshot()}, nil
}

// Current returns the latest version, or a Seq 0 version holding the
// initial snapshot before any mutation.
func (s *Session) Current() Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.history); n > 0 {
		return s.history[n-1]
	}

	return Version{Seq: s.seq, Op: OpNone, Trace: core.Trace{}, Snapshot: s.q.Snapshot()}
}

// History returns the kept versions, oldest first.
func (s *Session) History() []Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Version(nil), s.history...)
}

// Seq returns the number of successful mutations so far.
func (s *Session) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seq
}

// BeginPlayback marks a replay as running; it fails with ErrBusy if one
// already is.
func (s *Session) BeginPlayback() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		return ErrBusy
	}
	s.playing = true

	return nil
}

// EndPlayback clears the mark set by BeginPlayback.
func (s *Session) EndPlayback() {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
}

// Busy reports whether a playback is running.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playing
}

func (s *Session) guard(op Op) error {
	if s.playing {
		return s.reject(op, ErrBusy)
	}

	return nil
}

// commit validates (if enabled), bumps Seq and appends to history.
// Caller holds mu.
func (s *Session) commit(op Op, value int, tr core.Trace) (Version, error) {
	if s.opts.Validate {
		if err := s.q.Validate(); err != nil {
			return Version{}, s.reject(op, err)
		}
	}

	s.seq++
	v := Version{Seq: s.seq, Op: op, Value: value, Trace: tr, Snapshot: s.q.Snapshot()}
	s.history = append(s.history, v)
	if over := len(s.history) - s.opts.HistoryLimit; over > 0 {
		s.history = append([]Version(nil), s.history[over:]...)
	}

	s.log.Debug("operation committed",
		zap.Uint64("seq", v.Seq),
		zap.String("op", string(op)),
		zap.Int("value", value),
		zap.Int("steps", len(tr)),
		zap.Int("size", v.Snapshot.Size))

	return v, nil
}

// reject logs err at a level matching its severity and returns it unchanged.
func (s *Session) reject(op Op, err error) error {
	fields := []zap.Field{zap.String("op", string(op)), zap.Error(err)}
	if errors.Is(err, core.ErrInvariantViolation) {
		s.log.Error("invariant violated", fields...)
	} else {
		s.log.Info("operation rejected", fields...)
	}

	return err
}
