package optimization

import (
	"math"

	"go.uber.org/zap"
)

// Solver holds the state shared by every minimization algorithm: the
// candidate point, the bounds, the objective, the budget counters and the
// termination status.
//
// A Solver is owned by the single goroutine driving a run and is not safe for
// concurrent use.
type Solver struct {
	objective ObjectiveFunction
	x         []float64
	lower     []float64
	upper     []float64

	numDimensions int

	iterations     int
	iterationLimit int
	runtime        float64
	runtimeLimit   float64

	status     Status
	predicates Predicates
	logger     *zap.Logger
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger sets the logger used for status transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty solver whose status checks consult p.
// A nil p accepts every candidate as feasible and none as optimal.
func New(p Predicates, opts ...Option) *Solver {
	if p == nil {
		p = noPredicates{}
	}
	s := &Solver{
		iterationLimit: DefaultIterationLimit,
		runtimeLimit:   DefaultRuntimeLimit(),
		status:         Suboptimal,
		predicates:     p,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWithPoint creates a solver with an objective and an initial candidate.
// The dimensionality is taken from x, and feasibility and optimality are
// evaluated once.
func NewWithPoint(p Predicates, fn ObjectiveFunction, x []float64, opts ...Option) *Solver {
	s := New(p, opts...)
	s.objective = fn
	// Cannot fail: no dimensionality is established yet.
	_ = s.SetX(x)
	return s
}

// X returns a copy of the current candidate point.
func (s *Solver) X() []float64 { return clone(s.x) }

// LowerBounds returns a copy of the lower bounds, or nil if unset.
func (s *Solver) LowerBounds() []float64 { return clone(s.lower) }

// UpperBounds returns a copy of the upper bounds, or nil if unset.
func (s *Solver) UpperBounds() []float64 { return clone(s.upper) }

// Objective returns the current objective function.
func (s *Solver) Objective() ObjectiveFunction { return s.objective }

// NumDimensions returns the established dimensionality, or 0 if none.
func (s *Solver) NumDimensions() int { return s.numDimensions }

// Status returns the current termination status.
func (s *Solver) Status() Status { return s.status }

// SetX replaces the candidate point and re-runs the infeasibility and
// optimality checks, in that order.
func (s *Solver) SetX(x []float64) error {
	if err := s.checkDimensions("SetX", "x", x); err != nil {
		return err
	}
	s.x = clone(x)
	s.numDimensions = len(x)
	s.CheckInfeasibility()
	s.CheckOptimality()
	return nil
}

// SetLowerBounds replaces the lower bounds. The status is not re-checked.
func (s *Solver) SetLowerBounds(lower []float64) error {
	if err := s.checkDimensions("SetLowerBounds", "lower bounds", lower); err != nil {
		return err
	}
	s.lower = clone(lower)
	s.numDimensions = len(lower)
	return nil
}

// SetUpperBounds replaces the upper bounds. The status is not re-checked.
func (s *Solver) SetUpperBounds(upper []float64) error {
	if err := s.checkDimensions("SetUpperBounds", "upper bounds", upper); err != nil {
		return err
	}
	s.upper = clone(upper)
	s.numDimensions = len(upper)
	return nil
}

// SetObjective replaces the objective function.
func (s *Solver) SetObjective(fn ObjectiveFunction) {
	s.objective = fn
}

// ObjectiveValue evaluates the objective at the current candidate. Every call
// invokes the objective; nothing is cached. It returns NaN when no objective
// is set.
func (s *Solver) ObjectiveValue() float64 {
	if s.objective == nil {
		return math.NaN()
	}
	return s.objective(s.X())
}

func (s *Solver) checkDimensions(op, what string, v []float64) error {
	if s.numDimensions > 0 && len(v) != s.numDimensions {
		return newDimensionError(op, what, len(v), s.numDimensions)
	}
	return nil
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append(make([]float64, 0, len(v)), v...)
}
