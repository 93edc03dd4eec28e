package optimization

import "context"

// ObjectiveFunction maps a candidate point to the scalar value being minimized.
type ObjectiveFunction func(x []float64) float64

// Predicates decide whether the solver's current candidate is feasible and
// whether it satisfies the algorithm's convergence criterion.
type Predicates interface {
	// IsFeasible reports whether the current candidate satisfies the problem constraints.
	IsFeasible(s *Solver) bool

	// IsOptimal reports whether the current candidate meets the convergence criterion.
	IsOptimal(s *Solver) bool
}

// Algorithm is a concrete minimization method driven over a Solver.
type Algorithm interface {
	Predicates

	// Step advances the search by one iteration, updating the solver's candidate.
	Step(ctx context.Context, s *Solver) error
}

// noPredicates treats every candidate as feasible and never optimal.
type noPredicates struct{}

func (noPredicates) IsFeasible(*Solver) bool { return true }
func (noPredicates) IsOptimal(*Solver) bool  { return false }
