// Package objectives provides named test objectives for the solver CLI.
package objectives

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/functions"

	"github.com/copyleftdev/tundr-solver/internal/optimization"
)

// Objective is a named objective with its admissible dimensionality.
type Objective struct {
	Name string
	// Dimensions is the required dimensionality, or 0 for any.
	Dimensions int
	// MinDimensions is the smallest dimensionality accepted when Dimensions is 0.
	MinDimensions int
	Func          optimization.ObjectiveFunction
}

var registry = map[string]Objective{
	"sphere": {
		Name:          "sphere",
		MinDimensions: 1,
		Func:          func(x []float64) float64 { return floats.Dot(x, x) },
	},
	"rosenbrock": {
		Name:          "rosenbrock",
		MinDimensions: 2,
		Func:          functions.ExtendedRosenbrock{}.Func,
	},
	"beale": {
		Name:       "beale",
		Dimensions: 2,
		Func:       functions.Beale{}.Func,
	},
}

// Names returns the registered objective names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the objective called name, checking that it accepts dims dimensions.
func Lookup(name string, dims int) (optimization.ObjectiveFunction, error) {
	obj, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown objective %q (available: %v)", name, Names())
	}
	if obj.Dimensions > 0 && dims != obj.Dimensions {
		return nil, fmt.Errorf("objective %q requires %d dimensions, got %d", name, obj.Dimensions, dims)
	}
	if dims < obj.MinDimensions {
		return nil, fmt.Errorf("objective %q requires at least %d dimensions, got %d", name, obj.MinDimensions, dims)
	}
	return obj.Func, nil
}
