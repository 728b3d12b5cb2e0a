package vecmath

import "github.com/chewxy/math32"

// Vector4 is a homogeneous 4-component vector. W is conventionally 1 for
// points and 0 for directions.
type Vector4 struct {
	X, Y, Z, W float32
}

func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// XYZ drops the w component.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

func (a Vector4) Add(b Vector4) Vector4 {
	return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vector4) Sub(b Vector4) Vector4 {
	return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (v Vector4) Mul(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (a Vector4) Scale(b Vector4) Vector4 {
	return Vector4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Dot sums the products of all four components.
func (a Vector4) Dot(b Vector4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// LengthSqr is the squared Euclidean length over all four components.
func (v Vector4) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// LengthSqrLegacy reproduces the historical x²+y²+z²+2w sum for callers
// whose stored values were computed with it. New code should use LengthSqr.
func (v Vector4) LengthSqrLegacy() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W + v.W
}

func (v Vector4) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

// Normalize divides by Length. The zero vector yields NaN components.
func (v Vector4) Normalize() Vector4 {
	n := v.Length()
	return Vector4{v.X / n, v.Y / n, v.Z / n, v.W / n}
}

// Lerp interpolates componentwise: a*(1-t) + b*t. t is not clamped.
func Lerp(a, b Vector4, t float32) Vector4 {
	return Vector4{
		a.X*(1-t) + b.X*t,
		a.Y*(1-t) + b.Y*t,
		a.Z*(1-t) + b.Z*t,
		a.W*(1-t) + b.W*t,
	}
}

// Clamp limits each component to [lo, hi].
func (v Vector4) Clamp(lo, hi float32) Vector4 {
	return Vector4{
		Clamp(v.X, lo, hi),
		Clamp(v.Y, lo, hi),
		Clamp(v.Z, lo, hi),
		Clamp(v.W, lo, hi),
	}
}

// InterpolatedFromBarycentric weights v1, v2, v3 by bary.X, bary.Y, bary.Z.
// bary is typically the output of Barycentric.
func InterpolatedFromBarycentric(v1, v2, v3 Vector4, bary Vector3) Vector4 {
	return v1.Mul(bary.X).Add(v2.Mul(bary.Y)).Add(v3.Mul(bary.Z))
}
