// Package testutil provides assertion helpers for fixed-point and binary
// angle values in tests.
package testutil

import "testing"

// AngleDistance returns the shortest distance between two binary angles on
// the wrapping 256-unit circle, in [0, 128].
func AngleDistance(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	if d > 128 {
		d = 256 - d
	}
	return d
}

// RequireAngleNear fails t if got and want are further apart than tol units
// on the wrapping angle circle.
func RequireAngleNear(t *testing.T, got, want uint8, tol int) {
	t.Helper()
	if d := AngleDistance(got, want); d > tol {
		t.Fatalf("angle = %d, want %d (distance %d > tol %d)", got, want, d, tol)
	}
}

// RequireQ8Near fails t if two Q8.8 values differ by more than tol units.
func RequireQ8Near(t *testing.T, got, want int16, tol int) {
	t.Helper()
	d := int(got) - int(want)
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Fatalf("value = %d, want %d (diff %d > tol %d)", got, want, d, tol)
	}
}
