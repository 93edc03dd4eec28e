package objectives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"beale", "rosenbrock", "sphere"}, Names())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		dims    int
		x       []float64
		want    float64
		wantErr bool
	}{
		{name: "sphere", dims: 3, x: []float64{1, 2, 3}, want: 14},
		{name: "rosenbrock", dims: 2, x: []float64{1, 1}, want: 0},
		{name: "rosenbrock", dims: 2, x: []float64{0, 0}, want: 1},
		{name: "beale", dims: 2, x: []float64{3, 0.5}, want: 0},
		{name: "beale", dims: 3, wantErr: true},
		{name: "rosenbrock", dims: 1, wantErr: true},
		{name: "sphere", dims: 0, wantErr: true},
		{name: "himmelblau", dims: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Lookup(tt.name, tt.dims)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fn(tt.x), 1e-12)
		})
	}
}
