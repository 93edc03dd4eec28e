// Package runner drives an optimization.Algorithm over a Solver until the
// solver reports a terminal status.
package runner

import (
	"context"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/copyleftdev/tundr-solver/internal/metrics"
	"github.com/copyleftdev/tundr-solver/internal/optimization"
)

const component = "runner"

// Result summarises a finished run.
type Result struct {
	RunID      string
	Status     optimization.Status
	X          []float64
	Value      float64
	Iterations int
	Runtime    float64
}

// Runner repeatedly steps an algorithm, charging one iteration and the step's
// wall time to the solver's budget after every step.
type Runner struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the run logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run steps alg until s leaves the Suboptimal status or ctx is done.
//
// After every step the runner adds one iteration and the elapsed time, then
// calls CheckAll so that an optimal candidate wins over an exhausted budget.
// A budget that is already exhausted stops the run before the first step.
func (r *Runner) Run(ctx context.Context, alg optimization.Algorithm, s *optimization.Solver) (*Result, error) {
	if alg == nil || s == nil {
		return nil, optimization.NewError("algorithm and solver are required").
			WithOperation("Run").
			WithComponent(component)
	}

	id := xid.New().String()
	log := r.logger.With(zap.String("run_id", id))
	log.Info("solver run started",
		zap.Int("dimensions", s.NumDimensions()),
		zap.Int("iteration_limit", s.IterationLimit()),
		zap.Float64("runtime_limit", s.RuntimeLimit()),
	)

	s.CheckIterationCount()
	s.CheckRuntime()

	for !s.Status().Terminal() {
		if err := ctx.Err(); err != nil {
			log.Warn("solver run cancelled", zap.Error(err), zap.Int("iterations", s.IterationCount()))
			res := r.result(id, s)
			r.metrics.ObserveRun("cancelled", res.Value)
			return res, optimization.WrapError(err, "run cancelled").
				WithOperation("Run").
				WithComponent(component)
		}

		start := r.now()
		if err := alg.Step(ctx, s); err != nil {
			log.Error("algorithm step failed", zap.Error(err), zap.Int("iteration", s.IterationCount()+1))
			res := r.result(id, s)
			r.metrics.ObserveRun("failed", res.Value)
			return res, optimization.WrapErrorf(err, "step %d failed", s.IterationCount()+1).
				WithOperation("Run").
				WithComponent(component)
		}
		elapsed := r.now().Sub(start)

		s.AddIterations(1)
		s.AddRuntime(elapsed.Seconds())
		s.CheckAll()
		r.metrics.ObserveStep(elapsed)

		log.Debug("step completed",
			zap.Int("iteration", s.IterationCount()),
			zap.Duration("elapsed", elapsed),
			zap.Stringer("status", s.Status()),
		)
	}

	res := r.result(id, s)
	r.metrics.ObserveRun(res.Status.String(), res.Value)
	log.Info("solver run finished",
		zap.Stringer("status", res.Status),
		zap.Int("iterations", res.Iterations),
		zap.Float64("runtime", res.Runtime),
		zap.Float64("value", res.Value),
	)
	return res, nil
}

func (r *Runner) result(id string, s *optimization.Solver) *Result {
	return &Result{
		RunID:      id,
		Status:     s.Status(),
		X:          s.X(),
		Value:      s.ObjectiveValue(),
		Iterations: s.IterationCount(),
		Runtime:    s.Runtime(),
	}
}
