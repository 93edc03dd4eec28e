package optimization

import "math"

// DefaultIterationLimit leaves the iteration count effectively unbounded.
const DefaultIterationLimit = math.MaxInt

// DefaultRuntimeLimit returns the runtime ceiling of a fresh solver, +Inf.
func DefaultRuntimeLimit() float64 { return math.Inf(1) }

// IterationCount returns the number of iterations recorded so far.
func (s *Solver) IterationCount() int { return s.iterations }

// IterationLimit returns the current iteration ceiling.
func (s *Solver) IterationLimit() int { return s.iterationLimit }

// Runtime returns the elapsed runtime recorded so far, in seconds.
func (s *Solver) Runtime() float64 { return s.runtime }

// RuntimeLimit returns the current runtime ceiling, in seconds.
func (s *Solver) RuntimeLimit() float64 { return s.runtimeLimit }

// AddIterations adds k to the iteration count and checks the iteration budget.
// Only the iteration check runs; callers wanting the full tie-break call CheckAll.
func (s *Solver) AddIterations(k int) {
	s.iterations += k
	s.CheckIterationCount()
}

// AddRuntime adds t seconds to the elapsed runtime and checks the runtime budget.
func (s *Solver) AddRuntime(t float64) {
	s.runtime += t
	s.CheckRuntime()
}

// SetIterationLimit replaces the iteration ceiling. It takes effect on the next check.
func (s *Solver) SetIterationLimit(limit int) {
	s.iterationLimit = limit
}

// SetRuntimeLimit replaces the runtime ceiling, in seconds. It takes effect on the next check.
func (s *Solver) SetRuntimeLimit(limit float64) {
	s.runtimeLimit = limit
}
