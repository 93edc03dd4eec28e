package optimization

// WithinBounds reports whether every coordinate of x lies in [lower[i], upper[i]].
// A nil or empty bound slice leaves that side unconstrained.
func WithinBounds(x, lower, upper []float64) bool {
	for i, v := range x {
		if i < len(lower) && v < lower[i] {
			return false
		}
		if i < len(upper) && v > upper[i] {
			return false
		}
	}
	return true
}

// Clamp projects x onto the box given by lower and upper in place.
// A nil or empty bound slice leaves that side unconstrained.
func Clamp(x, lower, upper []float64) {
	for i := range x {
		if i < len(lower) && x[i] < lower[i] {
			x[i] = lower[i]
		}
		if i < len(upper) && x[i] > upper[i] {
			x[i] = upper[i]
		}
	}
}
