// Package vecmath provides float32 vector, quaternion and 4×4 matrix math
// for camera transforms, projections, rotations and ray queries.
//
// Matrices are row-major and multiply column vectors on the right (M·v).
// Angles are in radians. Degenerate inputs are not guarded: they surface as
// NoIntersection or as IEEE-754 Inf/NaN in the result.
package vecmath

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Tolerance is the absolute epsilon used by Approximately.
const Tolerance float32 = 1e-5

// NoIntersection is returned by the ray queries when nothing is hit.
const NoIntersection float32 = -1

// Approximately reports whether a and b differ by less than Tolerance.
func Approximately(a, b float32) bool {
	return math32.Abs(a-b) < Tolerance
}

// IRound rounds half up, truncating toward zero after the +0.5 shift.
func IRound(f float32) int {
	return int(f + 0.5)
}

func Min3[T constraints.Ordered](a, b, c T) T {
	t := a
	if b < t {
		t = b
	}
	if c < t {
		return c
	}
	return t
}

func Max3[T constraints.Ordered](a, b, c T) T {
	t := a
	if b > t {
		t = b
	}
	if c > t {
		return c
	}
	return t
}

// Clamp limits v to [lo, hi]. hi wins when the bounds are inverted and a
// NaN v yields lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	t := lo
	if v > lo {
		t = v
	}
	if t < hi {
		return t
	}
	return hi
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}
