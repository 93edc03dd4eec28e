package optimization

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// sphere is a simple quadratic objective function for testing
func sphere(x []float64) float64 {
	return floats.Dot(x, x)
}

// boxNorm is feasible inside the bounds and optimal when the candidate's norm
// falls below tol.
type boxNorm struct {
	tol float64
}

func (b boxNorm) IsFeasible(s *Solver) bool {
	return WithinBounds(s.X(), s.LowerBounds(), s.UpperBounds())
}

func (b boxNorm) IsOptimal(s *Solver) bool {
	x := s.X()
	return len(x) > 0 && floats.Norm(x, 2) < b.tol
}

// fixedPredicates returns constant answers and counts how often it is asked.
type fixedPredicates struct {
	feasible, optimal       bool
	feasibleCalls, optCalls int
}

func (f *fixedPredicates) IsFeasible(*Solver) bool {
	f.feasibleCalls++
	return f.feasible
}

func (f *fixedPredicates) IsOptimal(*Solver) bool {
	f.optCalls++
	return f.optimal
}

// assertFloat64SlicesEqual checks if two float64 slices are approximately equal
func assertFloat64SlicesEqual(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("at index %d: got %v, want %v (tolerance %v)", i, got[i], want[i], tol)
		}
	}
}
