package optimization

import "go.uber.org/zap"

// Status is the termination state of a solver run.
type Status int

const (
	// Suboptimal means the search should continue.
	Suboptimal Status = iota
	// Optimal means the convergence criterion holds for the current candidate.
	Optimal
	// Infeasible means the current candidate violates the problem constraints.
	Infeasible
	// IterationLimit means the iteration budget has been exhausted.
	IterationLimit
	// TimeLimit means the runtime budget has been exhausted.
	TimeLimit
)

var statusNames = map[Status]string{
	Suboptimal:     "suboptimal",
	Optimal:        "optimal",
	Infeasible:     "infeasible",
	IterationLimit: "iteration_limit",
	TimeLimit:      "time_limit",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether a driver should stop iterating.
func (s Status) Terminal() bool {
	return s != Suboptimal
}

// CheckIterationCount sets IterationLimit once the iteration budget is used up.
func (s *Solver) CheckIterationCount() {
	if s.iterations >= s.iterationLimit {
		s.setStatus(IterationLimit, "CheckIterationCount")
	}
}

// CheckRuntime sets TimeLimit once the runtime budget is used up.
func (s *Solver) CheckRuntime() {
	if s.runtime >= s.runtimeLimit {
		s.setStatus(TimeLimit, "CheckRuntime")
	}
}

// CheckInfeasibility sets Infeasible when the algorithm rejects the candidate.
func (s *Solver) CheckInfeasibility() {
	if !s.predicates.IsFeasible(s) {
		s.setStatus(Infeasible, "CheckInfeasibility")
	}
}

// CheckOptimality sets Optimal when the algorithm accepts the candidate.
func (s *Solver) CheckOptimality() {
	if s.predicates.IsOptimal(s) {
		s.setStatus(Optimal, "CheckOptimality")
	}
}

// CheckAll runs every check in the order iteration, runtime, infeasibility,
// optimality. Each check overwrites the status when its condition holds, so a
// candidate that is optimal ends as Optimal even if a budget is exhausted.
func (s *Solver) CheckAll() {
	s.CheckIterationCount()
	s.CheckRuntime()
	s.CheckInfeasibility()
	s.CheckOptimality()
}

func (s *Solver) setStatus(status Status, op string) {
	if status != s.status {
		s.logger.Debug("solver status changed",
			zap.Stringer("from", s.status),
			zap.Stringer("to", status),
			zap.String("op", op),
			zap.Int("iterations", s.iterations),
			zap.Float64("runtime", s.runtime),
		)
	}
	s.status = status
}
