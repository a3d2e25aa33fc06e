// SPDX-License-Identifier: MIT

package explore

import (
	"context"
	"errors"
)

// Sentinel errors for Explore.
var (
	// ErrNilNetwork is returned when the network argument is nil.
	ErrNilNetwork = errors.New("explore: network is nil")

	// ErrNilMatrix is returned when the distance matrix argument is nil.
	ErrNilMatrix = errors.New("explore: distance matrix is nil")

	// ErrDimensionMismatch is returned when the matrix order differs from the node count.
	ErrDimensionMismatch = errors.New("explore: matrix does not match network")

	// ErrSourceOutOfRange is returned when the source index is not a node of the network.
	ErrSourceOutOfRange = errors.New("explore: source index out of range")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("explore: negative time budget")

	// ErrBadCapacity is returned for a frontier capacity below one.
	ErrBadCapacity = errors.New("explore: frontier capacity must be >= 1")

	// ErrBadWorkers is returned for a worker count below one.
	ErrBadWorkers = errors.New("explore: workers must be >= 1")
)

// Entry is one retained search result.
type Entry struct {
	// Score is the total reward accrued by the state.
	Score int

	// Path lists the activated node indices in activation order.
	Path []int
}

// Stats reports search diagnostics.
type Stats struct {
	Popped   int // states taken off the work list
	Pushed   int // child states pushed
	Recorded int // states accepted by the frontier
	Evicted  int // entries dropped from the frontier tail
	Pruned   int // states cut by bound pruning
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Popped += o.Popped
	s.Pushed += o.Pushed
	s.Recorded += o.Recorded
	s.Evicted += o.Evicted
	s.Pruned += o.Pruned
}

// Result is the outcome of Explore.
type Result struct {
	Frontier *Frontier
	Stats    Stats
}

// Option configures Explore.
type Option func(*Options)

// Options holds the search configuration. Obtain defaults from DefaultOptions.
type Options struct {
	// Budget is the total time available, T.
	Budget int

	// Capacity is the frontier size, K.
	Capacity int

	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// BoundPruning skips a state when flow plus an optimistic bound on the
	// reward still reachable cannot exceed the frontier tail. The tail score
	// never decreases, so nothing skipped could ever have been recorded.
	BoundPruning bool

	// Workers > 1 shards the root's children across goroutines. Each shard
	// keeps its own frontier; shards are merged in order. The best entry is
	// unaffected, secondary entries may differ from a sequential run.
	Workers int

	// OnRecord, if non-nil, is called for every entry the frontier accepts.
	OnRecord func(Entry)
}

// DefaultOptions returns T=30, K=1, background context, no pruning shortcut,
// one worker and no hook.
func DefaultOptions() Options {
	return Options{
		Budget:   30,
		Capacity: 1,
		Ctx:      context.Background(),
		Workers:  1,
	}
}

// WithBudget sets the total time budget.
func WithBudget(t int) Option {
	return func(o *Options) { o.Budget = t }
}

// WithCapacity sets the frontier capacity.
func WithCapacity(k int) Option {
	return func(o *Options) { o.Capacity = k }
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBoundPruning toggles the optimistic-bound shortcut.
func WithBoundPruning(on bool) Option {
	return func(o *Options) { o.BoundPruning = on }
}

// WithWorkers sets the number of goroutines used to explore root shards.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithOnRecord installs a hook called for each accepted frontier entry.
func WithOnRecord(fn func(Entry)) Option {
	return func(o *Options) { o.OnRecord = fn }
}

// validate checks option values that do not depend on the network.
func (o Options) validate() error {
	if o.Budget < 0 {
		return ErrNegativeBudget
	}
	if o.Capacity < 1 {
		return ErrBadCapacity
	}
	if o.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
