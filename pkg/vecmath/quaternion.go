package vecmath

import "github.com/chewxy/math32"

// Quaternion represents a rotation (x, y, z, w); w is the scalar part.
type Quaternion struct {
	X, Y, Z, W float32
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionIdentity is the no-rotation quaternion {0,0,0,1}.
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

func (q Quaternion) SqrMagnitude() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

func (q Quaternion) Magnitude() float32 {
	return math32.Sqrt(q.SqrMagnitude())
}

// Normalized returns a unit-length copy. A zero quaternion yields NaN.
func (q Quaternion) Normalized() Quaternion {
	m := q.Magnitude()
	return Quaternion{q.X / m, q.Y / m, q.Z / m, q.W / m}
}

// Conjugate negates the vector part; for unit quaternions it is the inverse.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns the Hamilton product a·b: the rotation b followed by a.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// AxisAngle builds a rotation of angle radians about axis. The axis is
// assumed to be unit length.
func AxisAngle(axis Vector3, angle float32) Quaternion {
	s, c := math32.Sincos(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// EulerToQuaternion converts XYZ Euler angles (radians) to a quaternion.
func EulerToQuaternion(rx, ry, rz float32) Quaternion {
	sx, cx := math32.Sincos(rx * 0.5)
	sy, cy := math32.Sincos(ry * 0.5)
	sz, cz := math32.Sincos(rz * 0.5)

	return Quaternion{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// Rotate applies q to v as q·v·q*. q must be unit length.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector3{r.X, r.Y, r.Z}
}

// ToMat4x4 converts q to a pure rotation matrix (fourth row {0,0,0,1}, no
// translation). q is normalized first unless its squared magnitude is
// already within Tolerance of 1.
func (q Quaternion) ToMat4x4() Matrix4x4 {
	u := q
	if !Approximately(q.SqrMagnitude(), 1) {
		u = q.Normalized()
	}

	x, y, z, w := u.X, u.Y, u.Z, u.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix4x4{
		X: Vector4{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0},
		Y: Vector4{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0},
		Z: Vector4{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0},
		T: Vector4{0, 0, 0, 1},
	}
}
