// Package neldermead adapts gonum's derivative-free Nelder-Mead method to the
// optimization.Algorithm contract.
package neldermead

import (
	"context"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/copyleftdev/tundr-solver/internal/optimization"
)

const component = "neldermead"

const (
	// DefaultTolerance is the per-step improvement below which the candidate is optimal.
	DefaultTolerance = 1e-8
	// DefaultBurst is the number of Nelder-Mead iterations performed per Step.
	DefaultBurst = 20
	// DefaultSimplexSize is the edge length of the simplex built around the candidate.
	DefaultSimplexSize = 0.05
)

// Algorithm runs a short burst of Nelder-Mead iterations per Step, starting
// from the solver's candidate and keeping every evaluated point inside the
// solver's bounds.
//
// The candidate is optimal once a Step improves the objective by no more than
// the tolerance. An Algorithm keeps per-run state and must drive a single
// Solver.
type Algorithm struct {
	tolerance   float64
	burst       int
	simplexSize float64
	logger      *zap.Logger

	improvement float64
}

// Option configures an Algorithm.
type Option func(*Algorithm)

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(a *Algorithm) { a.tolerance = tol }
}

// WithBurst sets the number of Nelder-Mead iterations per Step.
func WithBurst(n int) Option {
	return func(a *Algorithm) {
		if n > 0 {
			a.burst = n
		}
	}
}

// WithSimplexSize sets the size of the initial simplex of every Step.
func WithSimplexSize(size float64) Option {
	return func(a *Algorithm) {
		if size > 0 {
			a.simplexSize = size
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Algorithm) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates a Nelder-Mead algorithm.
func New(opts ...Option) *Algorithm {
	a := &Algorithm{
		tolerance:   DefaultTolerance,
		burst:       DefaultBurst,
		simplexSize: DefaultSimplexSize,
		logger:      zap.NewNop(),
		improvement: math.Inf(1),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsFeasible reports whether the candidate lies inside the solver's bounds.
func (a *Algorithm) IsFeasible(s *optimization.Solver) bool {
	return optimization.WithinBounds(s.X(), s.LowerBounds(), s.UpperBounds())
}

// IsOptimal reports whether the last Step improved the objective by at most
// the tolerance. It is false before the first Step.
func (a *Algorithm) IsOptimal(*optimization.Solver) bool {
	return a.improvement <= a.tolerance
}

// Step runs one burst of Nelder-Mead from the current candidate and moves the
// candidate to the best point found.
func (a *Algorithm) Step(ctx context.Context, s *optimization.Solver) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fn := s.Objective()
	if fn == nil {
		return optimization.NewError("objective function is not set").
			WithOperation("Step").
			WithComponent(component)
	}
	x := s.X()
	if len(x) == 0 {
		return optimization.NewError("candidate point is not set").
			WithOperation("Step").
			WithComponent(component)
	}
	lower, upper := s.LowerBounds(), s.UpperBounds()
	optimization.Clamp(x, lower, upper)
	before := fn(x)

	// Evaluate on a clamped copy; gonum must not see its argument modified.
	buf := make([]float64, len(x))
	problem := optimize.Problem{
		Func: func(y []float64) float64 {
			copy(buf, y)
			optimization.Clamp(buf, lower, upper)
			return fn(buf)
		},
	}

	convTol := math.Max(a.tolerance, 0)
	settings := &optimize.Settings{
		MajorIterations: a.burst,
		Converger: &optimize.FunctionConverge{
			Absolute:   convTol,
			Relative:   convTol,
			Iterations: a.burst,
		},
	}
	method := &optimize.NelderMead{
		Reflection:  1.0,
		Expansion:   2.0,
		Contraction: 0.5,
		Shrink:      0.5,
		SimplexSize: a.simplexSize,
	}

	result, err := optimize.Minimize(problem, x, settings, method)
	if err != nil {
		return optimization.WrapError(err, "nelder-mead minimization failed").
			WithOperation("Step").
			WithComponent(component)
	}

	next := x
	a.improvement = 0
	if result.F < before {
		next = append([]float64(nil), result.X...)
		optimization.Clamp(next, lower, upper)
		a.improvement = before - result.F
	}

	a.logger.Debug("nelder-mead burst finished",
		zap.Float64("before", before),
		zap.Float64("after", result.F),
		zap.Float64("improvement", a.improvement),
		zap.Int("func_evaluations", result.Stats.FuncEvaluations),
		zap.Stringer("gonum_status", result.Status),
	)

	return s.SetX(next)
}
