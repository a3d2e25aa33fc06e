// SPDX-License-Identifier: MIT
//
// Search engine: explicit LIFO work list, copy-on-branch states, frontier
// recording on every pop, optional bound pruning and root sharding.

package explore

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/network"
)

// ctxCheckMask sets how often the context is polled (every 4096 pops).
const ctxCheckMask = 4095

// state is one owned search snapshot. opened and path are never shared
// between two live states.
type state struct {
	opened  []bool // node index → activated in this branch
	current int    // node the state stands at
	time    int    // time remaining
	flow    int    // accumulated reward
	path    []int  // activation order
}

// child returns an independent copy of s standing at next with time t.
func (s *state) child(next, t int) state {
	path := make([]int, len(s.path), len(s.path)+1)
	copy(path, s.path)

	return state{
		opened:  slices.Clone(s.opened),
		current: next,
		time:    t,
		flow:    s.flow,
		path:    path,
	}
}

// engine holds the read-only inputs and the per-run mutable search data.
// Shards get their own engine sharing the read-only part.
type engine struct {
	// Read-only inputs
	dist    *distance.Matrix
	rates   []int // index → reward rate
	targets []int // rewarding indices, ascending

	// Policy
	ctx      context.Context
	useBound bool
	onRecord func(Entry)

	// Per-run
	frontier *Frontier
	stats    Stats
	steps    int
}

// cancelled polls the context on the first pop and every ctxCheckMask+1 after.
func (e *engine) cancelled() error {
	poll := e.steps&ctxCheckMask == 0
	e.steps++
	if !poll {
		return nil
	}

	return e.ctx.Err()
}

// optimistic returns the largest reward s could still add if every reachable
// unopened node were activated right after a direct trip from s.current.
// Any real route reaches node i no sooner than dist(current, i), so this
// never underestimates.
func (e *engine) optimistic(s *state) int {
	var (
		extra, d int
	)
	for _, i := range e.targets {
		if s.opened[i] || !e.dist.Reachable(s.current, i) {
			continue
		}
		d = e.dist.At(s.current, i)
		if d < s.time {
			extra += e.rates[i] * (s.time - d - 1)
		}
	}

	return extra
}

// expand activates s.current if needed, pushes its children, then offers s
// to the frontier. The frontier takes ownership of s.path.
func (e *engine) expand(s state, push func(state)) {
	// Activation: one unit of time, reward for every unit left afterwards.
	if r := e.rates[s.current]; r > 0 && !s.opened[s.current] && s.time > 0 {
		s.opened[s.current] = true
		s.path = append(s.path, s.current)
		s.time--
		s.flow += s.time * r
	}

	if e.useBound && s.flow+e.optimistic(&s) <= e.frontier.Tail() {
		e.stats.Pruned++
		return
	}

	if s.time > 0 {
		var d int
		for _, i := range e.targets {
			if i == s.current || s.opened[i] || !e.dist.Reachable(s.current, i) {
				continue
			}
			d = e.dist.At(s.current, i)
			if d >= s.time { // need one unit left to activate
				continue
			}
			push(s.child(i, s.time-d))
			e.stats.Pushed++
		}
	}

	e.record(s.flow, s.path)
}

// record offers a result to the frontier and updates diagnostics.
func (e *engine) record(score int, path []int) {
	before := e.frontier.Evicted()
	if !e.frontier.Offer(score, path) {
		return
	}
	e.stats.Recorded++
	e.stats.Evicted += e.frontier.Evicted() - before
	if e.onRecord != nil {
		e.onRecord(Entry{Score: score, Path: slices.Clone(path)})
	}
}

// run drains a work list seeded with the given states.
func (e *engine) run(seed ...state) error {
	stack := append([]state(nil), seed...)
	push := func(s state) { stack = append(stack, s) }

	var s state
	for len(stack) > 0 {
		if err := e.cancelled(); err != nil {
			return fmt.Errorf("explore: %w", err)
		}
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.stats.Popped++
		e.expand(s, push)
	}

	return nil
}

// Explore searches every activation order reachable from source within the
// configured budget and returns the resulting frontier.
//
// Errors: ErrNilNetwork, ErrNilMatrix, ErrDimensionMismatch,
// ErrSourceOutOfRange, ErrNegativeBudget, ErrBadCapacity, ErrBadWorkers, or
// the context error (wrapped) on cancellation.
func Explore(net *network.Network, dist *distance.Matrix, source int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if net == nil {
		return nil, ErrNilNetwork
	}
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if dist.N() != net.Len() {
		return nil, fmt.Errorf("matrix %d, network %d: %w", dist.N(), net.Len(), ErrDimensionMismatch)
	}
	if source < 0 || source >= net.Len() {
		return nil, fmt.Errorf("source %d of %d: %w", source, net.Len(), ErrSourceOutOfRange)
	}

	n := net.Len()
	e := &engine{
		dist:     dist,
		rates:    make([]int, n),
		targets:  net.Rewarding(),
		ctx:      o.Ctx,
		useBound: o.BoundPruning,
		onRecord: o.OnRecord,
		frontier: NewFrontier(o.Capacity),
	}
	for i := 0; i < n; i++ {
		e.rates[i] = net.Rate(i)
	}

	root := state{
		opened:  make([]bool, n),
		current: source,
		time:    o.Budget,
	}

	var err error
	if o.Workers > 1 {
		err = e.runSharded(root, o)
	} else {
		err = e.run(root)
	}
	if err != nil {
		return nil, err
	}

	return &Result{Frontier: e.frontier, Stats: e.stats}, nil
}

// runSharded expands the root on the caller, explores each first-level child
// in its own goroutine with a private frontier, then merges the shard
// frontiers into e.frontier in shard order.
func (e *engine) runSharded(root state, o Options) error {
	var shards []state
	e.stats.Popped++
	e.expand(root, func(s state) { shards = append(shards, s) })

	// Highest index first, matching the sequential pop order.
	slices.Reverse(shards)

	workers := make([]*engine, len(shards))
	g, gctx := errgroup.WithContext(e.ctx)
	g.SetLimit(o.Workers)
	for k := range shards {
		w := &engine{
			dist:     e.dist,
			rates:    e.rates,
			targets:  e.targets,
			ctx:      gctx,
			useBound: e.useBound,
			frontier: NewFrontier(o.Capacity),
		}
		workers[k] = w
		g.Go(func() error { return w.run(shards[k]) })
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, w := range workers {
		e.stats.add(Stats{Popped: w.stats.Popped, Pushed: w.stats.Pushed, Pruned: w.stats.Pruned})
		for _, en := range w.frontier.entries {
			e.record(en.Score, en.Path)
		}
	}

	return nil
}
