package vecmath

import "github.com/chewxy/math32"

// Vector3 is a 3-component point or direction (value type, stack-allocated).
type Vector3 struct {
	X, Y, Z float32
}

func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul scales every component by s.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Scale returns the componentwise product.
func (a Vector3) Scale(b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - b.Y*a.Z,
		a.Z*b.X - b.Z*a.X,
		a.X*b.Y - b.X*a.Y,
	}
}

func (a Vector3) Dot(b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (v Vector3) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.SqrMagnitude())
}

// Normalize divides by the magnitude. The zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 {
	n := v.Magnitude()
	return Vector3{v.X / n, v.Y / n, v.Z / n}
}

// Extend promotes v to a homogeneous Vector4 with the given w.
func (v Vector3) Extend(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Barycentric returns the weights of pos against triangle (a, b, c) using
// only the x/y components. The third weight is 1 minus the first two.
// Triangles collinear in xy divide by a zero determinant.
func Barycentric(a, b, c, pos Vector3) Vector3 {
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)

	xb := ((b.Y-c.Y)*(pos.X-c.X) + (c.X-b.X)*(pos.Y-c.Y)) / det
	yb := ((c.Y-a.Y)*(pos.X-c.X) + (a.X-c.X)*(pos.Y-c.Y)) / det

	return Vector3{xb, yb, 1 - xb - yb}
}

// LinePlaneIntersection returns the distance along rayDir, in units of
// rayDir's length, at which the ray meets the plane. It returns
// NoIntersection when the ray is parallel to the plane or starts on it.
// The result is negative when the plane is behind the ray origin.
func LinePlaneIntersection(planeOrigin, planeNormal, rayOrigin, rayDir Vector3) float32 {
	num := planeOrigin.Sub(rayOrigin).Dot(planeNormal)
	den := rayDir.Dot(planeNormal)

	if Approximately(den, 0) || Approximately(num, 0) {
		return NoIntersection
	}

	return num / den
}

// RaySphereIntersection returns the nearest non-negative ray parameter at
// which the ray meets the sphere, or NoIntersection when the ray misses or
// the sphere lies entirely behind the origin. From inside the sphere the
// exit distance is returned.
func RaySphereIntersection(center Vector3, radius float32, rayOrigin, rayDir Vector3) float32 {
	local := rayOrigin.Sub(center)

	a := rayDir.Dot(rayDir)
	b := 2 * rayDir.Dot(local)
	c := local.Dot(local) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return NoIntersection
	}

	// Roots are q/a and c/q; q's branch follows the sign of b.
	sq := math32.Sqrt(disc)
	var q float32
	if b < 0 {
		q = (-b - sq) / 2
	} else {
		q = (-b + sq) / 2
	}

	t0 := q / a
	t1 := c / q
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if t1 < 0 {
		return NoIntersection
	}
	if t0 < 0 {
		return t1
	}
	return t0
}
