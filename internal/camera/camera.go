// Package camera turns a scene camera into view/projection matrices and
// primary rays.
package camera

import (
	"geomkit/internal/scene"
	"geomkit/pkg/vecmath"
)

// Camera holds the derived transforms. View space has +X right, +Y up and
// +Z forward; depth is the view-space z.
type Camera struct {
	Eye                   vecmath.Vector3
	Right, Up, Forward    vecmath.Vector3
	View, Proj, ViewProj  vecmath.Matrix4x4
	Near, Far             float32
	Ortho                 bool
	halfWidth, halfHeight float32 // ortho box half extents
}

// New builds a camera for an image with the given width/height aspect.
func New(c scene.Camera, aspect float32) *Camera {
	cam := &Camera{
		Eye:   c.Eye.V(),
		Near:  c.Near,
		Far:   c.Far,
		Ortho: c.Ortho,
	}

	cam.View = vecmath.LookAt(c.Eye.V(), c.Target.V(), c.Up.V())
	cam.Right = cam.View.X.XYZ()
	cam.Up = cam.View.Y.XYZ()
	cam.Forward = cam.View.Z.XYZ()

	if c.Ortho {
		cam.halfHeight = c.OrthoSize
		cam.halfWidth = c.OrthoSize * aspect
		cam.Proj = vecmath.Ortho(cam.halfWidth, -cam.halfWidth, cam.halfHeight, -cam.halfHeight, c.Far, c.Near)
	} else {
		cam.Proj = vecmath.Persp(vecmath.Deg2Rad(c.FovYDeg), aspect, c.Near, c.Far)
	}
	cam.ViewProj = vecmath.Mat4Mul(cam.Proj, cam.View)

	return cam
}

// Depth returns the view-space depth of a world point.
func (c *Camera) Depth(p vecmath.Vector3) float32 {
	return c.View.MulPoint(p).Z
}

// Project maps a world point to pixel coordinates (x right, y down) on a
// w×h image. The returned vector's Z is the view depth. ok is false when
// the point lies outside the near/far range.
func (c *Camera) Project(p vecmath.Vector3, w, h int) (screen vecmath.Vector3, ok bool) {
	depth := c.Depth(p)
	if depth < c.Near || depth > c.Far {
		return vecmath.Vector3{}, false
	}

	ndc := c.ViewProj.MulPoint(p)
	return vecmath.Vector3{
		X: (ndc.X + 1) * 0.5 * float32(w),
		Y: (1 - ndc.Y) * 0.5 * float32(h),
		Z: depth,
	}, true
}

// Ray returns the primary ray through the centre of pixel (px, py). For a
// perspective camera the direction has view-space z of exactly 1, so a hit
// parameter t is also the view depth. Ortho rays start on the image plane
// through the eye and travel along Forward with unit length.
func (c *Camera) Ray(px, py, w, h int) (origin, dir vecmath.Vector3) {
	nx := 2*(float32(px)+0.5)/float32(w) - 1
	ny := 1 - 2*(float32(py)+0.5)/float32(h)

	if c.Ortho {
		origin = c.Eye.Add(c.Right.Mul(nx * c.halfWidth)).Add(c.Up.Mul(ny * c.halfHeight))
		return origin, c.Forward
	}

	dir = c.Forward.
		Add(c.Right.Mul(nx / c.Proj.X.X)).
		Add(c.Up.Mul(ny / c.Proj.Y.Y))
	return c.Eye, dir
}
