// SPDX-License-Identifier: MIT

// Package solver wires the route engine together.
//
// An Engine builds the distance matrix once for a network and then answers
// any number of runs against it:
//
//   - Solo: one actor; the answer is the top entry of the frontier.
//   - Duo:  two actors; a larger frontier is explored and the best pair of
//     entries with disjoint opened-sets is selected.
//
// Each run is logged (slog), measured (OpenTelemetry metrics) and traced
// (OpenTelemetry spans) under a fresh run id. The engine is safe for
// concurrent runs: it only reads the network and the matrix.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/explore"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/observability"
	"github.com/katalvlaran/lvroute/pairing"
)

// ErrNilNetwork is returned by New for a nil network.
var ErrNilNetwork = errors.New("solver: network is nil")

// Mode names a run configuration.
type Mode string

const (
	ModeSolo Mode = "solo"
	ModeDuo  Mode = "duo"
)

// Outcome is the answer of one run.
type Outcome struct {
	Mode  Mode
	Score int

	// Paths holds one node-name path per actor (one for solo, two for duo).
	// Empty when nothing could be activated.
	Paths [][]string

	// FrontierSize is the number of entries the explorer retained.
	FrontierSize int

	Stats   explore.Stats
	RunID   string
	Elapsed time.Duration
}

// Engine answers runs over one network.
type Engine struct {
	net  *network.Network
	dist *distance.Matrix

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	workers int
	bound   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the run logger. nil keeps runs silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpans sets the span manager.
func WithSpans(s observability.SpanManager) Option {
	return func(e *Engine) {
		if s != nil {
			e.spans = s
		}
	}
}

// WithWorkers forwards explore.WithWorkers to every run.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithBoundPruning forwards explore.WithBoundPruning to every run.
func WithBoundPruning(on bool) Option {
	return func(e *Engine) { e.bound = on }
}

// New builds the distance matrix for net and returns an Engine.
func New(net *network.Network, opts ...Option) (*Engine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	e := &Engine{
		net:     net,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dist = distance.Build(net)

	return e, nil
}

// Network returns the engine's network.
func (e *Engine) Network() *network.Network { return e.net }

// Distances returns the shared distance matrix.
func (e *Engine) Distances() *distance.Matrix { return e.dist }

// Frontier runs the explorer from the named source and returns its raw result.
// Unknown sources yield network.ErrUnknownNode.
func (e *Engine) Frontier(ctx context.Context, source string, budget, capacity int) (*explore.Result, error) {
	src, err := e.net.Index(source)
	if err != nil {
		return nil, err
	}

	return explore.Explore(e.net, e.dist, src,
		explore.WithContext(ctx),
		explore.WithBudget(budget),
		explore.WithCapacity(capacity),
		explore.WithWorkers(e.workers),
		explore.WithBoundPruning(e.bound),
	)
}

// Solo returns the best single-actor score and its path.
func (e *Engine) Solo(ctx context.Context, source string, budget, capacity int) (Outcome, error) {
	return e.run(ctx, ModeSolo, source, budget, capacity, func(_ context.Context, res *explore.Result) (int, [][]string) {
		best := res.Frontier.Best()
		if len(best.Path) == 0 {
			return best.Score, nil
		}
		return best.Score, [][]string{e.net.Names(best.Path)}
	})
}

// Duo returns the best combined score of two actors with disjoint opened-sets.
// When no disjoint pair exists the score is 0.
func (e *Engine) Duo(ctx context.Context, source string, budget, capacity int) (Outcome, error) {
	return e.run(ctx, ModeDuo, source, budget, capacity, func(runCtx context.Context, res *explore.Result) (int, [][]string) {
		_, span := e.spans.StartPhaseSpan(runCtx, "pair")
		defer e.spans.EndSpanWithError(span, nil)

		pair, ok := pairing.Best(res.Frontier.Entries())
		if !ok {
			return 0, nil
		}
		var paths [][]string
		for _, p := range [][]int{pair.Left.Path, pair.Right.Path} {
			if len(p) > 0 {
				paths = append(paths, e.net.Names(p))
			}
		}
		return pair.Score, paths
	})
}

// run executes one explorer pass and hands the result to finish.
func (e *Engine) run(
	ctx context.Context,
	mode Mode,
	source string,
	budget, capacity int,
	finish func(context.Context, *explore.Result) (int, [][]string),
) (Outcome, error) {
	runID := uuid.NewString()
	logger := observability.EnrichLogger(e.logger, runID, string(mode), source)

	ctx, runSpan := e.spans.StartRunSpan(ctx, string(mode), runID)
	observability.LogRunStart(logger, budget, capacity)
	start := time.Now()

	exploreCtx, exploreSpan := e.spans.StartPhaseSpan(ctx, "explore")
	res, err := e.Frontier(exploreCtx, source, budget, capacity)
	e.spans.EndSpanWithError(exploreSpan, err)
	if err != nil {
		elapsed := time.Since(start)
		observability.LogRunError(logger, err)
		e.metrics.RecordRun(ctx, string(mode), 0, 0, elapsed, err)
		e.spans.EndSpanWithError(runSpan, err)
		return Outcome{}, err
	}

	score, paths := finish(ctx, res)
	elapsed := time.Since(start)

	e.spans.AddSpanEvent(ctx, "result",
		attribute.Int("score", score),
		attribute.Int("states", res.Stats.Popped),
		attribute.Int("frontier", res.Frontier.Len()),
	)
	observability.LogRunComplete(logger, score, res.Stats.Popped, res.Stats.Recorded, elapsed)
	e.metrics.RecordRun(ctx, string(mode), res.Stats.Popped, res.Stats.Recorded, elapsed, nil)
	e.spans.EndSpanWithError(runSpan, nil)

	return Outcome{
		Mode:         mode,
		Score:        score,
		Paths:        paths,
		FrontierSize: res.Frontier.Len(),
		Stats:        res.Stats,
		RunID:        runID,
		Elapsed:      elapsed,
	}, nil
}
