package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIterations(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		adds  []int
		want  Status
	}{
		{"below limit", 5, []int{1, 2, 1}, Suboptimal},
		{"reaches limit", 5, []int{2, 3}, IterationLimit},
		{"exceeds limit", 5, []int{10}, IterationLimit},
		{"negative increment", 5, []int{4, -2, 2}, Suboptimal},
		{"default limit", DefaultIterationLimit, []int{1 << 30}, Suboptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			s.SetIterationLimit(tt.limit)
			total := 0
			for _, k := range tt.adds {
				s.AddIterations(k)
				total += k
			}
			assert.Equal(t, total, s.IterationCount())
			assert.Equal(t, tt.want, s.Status())
		})
	}
}

func TestAddIterationsDoesNotRunOptimalityCheck(t *testing.T) {
	p := &fixedPredicates{feasible: true, optimal: false}
	s := NewWithPoint(p, sphere, []float64{1})
	p.optimal = true
	s.SetIterationLimit(2)

	s.AddIterations(2)

	assert.Equal(t, IterationLimit, s.Status())
	assert.Equal(t, 1, p.optCalls)
}

func TestAddRuntime(t *testing.T) {
	s := New(nil)
	s.SetRuntimeLimit(1.5)

	s.AddRuntime(0.5)
	assert.Equal(t, Suboptimal, s.Status())
	assert.InDelta(t, 0.5, s.Runtime(), 1e-12)

	s.AddRuntime(1.0)
	assert.Equal(t, TimeLimit, s.Status())
	assert.InDelta(t, 1.5, s.Runtime(), 1e-12)
}

func TestSetLimitsDoNotRecheck(t *testing.T) {
	s := New(nil)
	s.AddIterations(10)
	s.AddRuntime(10)

	s.SetIterationLimit(5)
	s.SetRuntimeLimit(5)
	assert.Equal(t, Suboptimal, s.Status())
	assert.Equal(t, 5, s.IterationLimit())
	assert.Equal(t, 5.0, s.RuntimeLimit())

	s.CheckIterationCount()
	assert.Equal(t, IterationLimit, s.Status())
	s.CheckRuntime()
	assert.Equal(t, TimeLimit, s.Status())
}
