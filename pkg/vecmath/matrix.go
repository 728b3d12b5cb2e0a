package vecmath

import "github.com/chewxy/math32"

// Matrix4x4 is a row-major 4×4 transform. X, Y and Z are the first three
// rows; T is the fourth. Element (row r, column c) is m.<r>.<c>.
type Matrix4x4 struct {
	X, Y, Z, T Vector4
}

// NewMatrix4x4 assembles a matrix from four rows.
func NewMatrix4x4(x, y, z, t Vector4) Matrix4x4 {
	return Matrix4x4{X: x, Y: y, Z: z, T: t}
}

func Identity() Matrix4x4 {
	return Matrix4x4{
		X: Vector4{1, 0, 0, 0},
		Y: Vector4{0, 1, 0, 0},
		Z: Vector4{0, 0, 1, 0},
		T: Vector4{0, 0, 0, 1},
	}
}

// Column returns column i (0..3) as a vector.
func (m Matrix4x4) Column(i int) Vector4 {
	switch i {
	case 0:
		return Vector4{m.X.X, m.Y.X, m.Z.X, m.T.X}
	case 1:
		return Vector4{m.X.Y, m.Y.Y, m.Z.Y, m.T.Y}
	case 2:
		return Vector4{m.X.Z, m.Y.Z, m.Z.Z, m.T.Z}
	default:
		return Vector4{m.X.W, m.Y.W, m.Z.W, m.T.W}
	}
}

func (m Matrix4x4) Transpose() Matrix4x4 {
	return Matrix4x4{m.Column(0), m.Column(1), m.Column(2), m.Column(3)}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Matrix4x4) Matrix4x4 {
	c0, c1, c2, c3 := b.Column(0), b.Column(1), b.Column(2), b.Column(3)
	row := func(r Vector4) Vector4 {
		return Vector4{r.Dot(c0), r.Dot(c1), r.Dot(c2), r.Dot(c3)}
	}
	return Matrix4x4{row(a.X), row(a.Y), row(a.Z), row(a.T)}
}

// MulVec4 returns M × v with no perspective divide.
func (m Matrix4x4) MulVec4(v Vector4) Vector4 {
	return Vector4{m.X.Dot(v), m.Y.Dot(v), m.Z.Dot(v), m.T.Dot(v)}
}

// MulPoint transforms a 3D point (w=1) and divides by the resulting w.
// A zero w produces Inf or NaN components.
func (m Matrix4x4) MulPoint(v Vector3) Vector3 {
	p := v.Extend(1)
	w := m.T.Dot(p)
	return Vector3{m.X.Dot(p) / w, m.Y.Dot(p) / w, m.Z.Dot(p) / w}
}

// MulDir transforms a direction (w=0); translation does not apply.
func (m Matrix4x4) MulDir(v Vector3) Vector3 {
	return m.MulVec4(v.Extend(0)).XYZ()
}

// Translation places v in the fourth column of the first three rows.
func Translation(v Vector3) Matrix4x4 {
	m := Identity()
	m.X.W = v.X
	m.Y.W = v.Y
	m.Z.W = v.Z
	return m
}

// Ortho maps the box [left,right]×[bottom,top]×[zNear,zFar] to the
// canonical [-1,1] clip volume.
func Ortho(right, left, top, bottom, zFar, zNear float32) Matrix4x4 {
	return Matrix4x4{
		X: Vector4{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		Y: Vector4{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		Z: Vector4{0, 0, 2 / (zFar - zNear), -(zFar + zNear) / (zFar - zNear)},
		T: Vector4{0, 0, 0, 1},
	}
}

// Persp builds a perspective projection from a vertical field of view in
// radians. The fourth row is {0,0,1,0}: clip w is the view-space z, which
// is positive in front of a LookAt camera. Depths zn and zf map to -1 and 1.
func Persp(fovY, aspect, zn, zf float32) Matrix4x4 {
	yscale := math32.Cos(fovY/2) / math32.Sin(fovY/2)
	xscale := yscale / aspect

	return Matrix4x4{
		X: Vector4{xscale, 0, 0, 0},
		Y: Vector4{0, yscale, 0, 0},
		Z: Vector4{0, 0, (-zn - zf) / (zn - zf), (2 * zf * zn) / (zn - zf)},
		T: Vector4{0, 0, 1, 0},
	}
}

// LookAt builds a view matrix with +Z pointing from eye toward target.
// up parallel to the view direction yields NaN rows.
func LookAt(eye, target, up Vector3) Matrix4x4 {
	zaxis := target.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix4x4{
		X: xaxis.Extend(-xaxis.Dot(eye)),
		Y: yaxis.Extend(-yaxis.Dot(eye)),
		Z: zaxis.Extend(-zaxis.Dot(eye)),
		T: Vector4{0, 0, 0, 1},
	}
}

// SetBase returns a copy of m whose upper-left 3×3 columns are x, y and z.
// The fourth column and the fourth row are left as they were.
func SetBase(m Matrix4x4, x, y, z Vector3) Matrix4x4 {
	m.X.X, m.Y.X, m.Z.X = x.X, x.Y, x.Z
	m.X.Y, m.Y.Y, m.Z.Y = y.X, y.Y, y.Z
	m.X.Z, m.Y.Z, m.Z.Z = z.X, z.Y, z.Z
	return m
}

// ApproxEqual compares every element within eps.
func ApproxEqual(a, b Matrix4x4, eps float32) bool {
	ra := [4]Vector4{a.X, a.Y, a.Z, a.T}
	rb := [4]Vector4{b.X, b.Y, b.Z, b.T}
	for i := range ra {
		d := ra[i].Sub(rb[i])
		if math32.Abs(d.X) > eps || math32.Abs(d.Y) > eps ||
			math32.Abs(d.Z) > eps || math32.Abs(d.W) > eps {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Matrix4x4) IsIdentity() bool {
	return ApproxEqual(m, Identity(), Tolerance)
}
