// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "math"

// validateMin ensures got ≥ min, else ErrTooFewVertices.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateLength ensures x is finite and > 0, else ErrBadSize.
// Complexity: O(1).
func validateLength(method string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return builderErrorf(method, ErrBadSize, "length must be finite and > 0, got %g", x)
	}

	return nil
}
