package raster

import (
	"geomkit/internal/camera"
	"geomkit/internal/scene"
	"geomkit/pkg/vecmath"
)

// TraceAnalytic casts one primary ray per pixel against the scene's
// spheres and planes and keeps hits nearer than what is already in the
// depth buffer.
func TraceAnalytic(fb *FrameBuffer, cam *camera.Camera, spheres []scene.Sphere, planes []scene.Plane, lc *LightConfig) {
	if len(spheres) == 0 && len(planes) == 0 {
		return
	}

	for py := 0; py < fb.Height; py++ {
		for px := 0; px < fb.Width; px++ {
			origin, dir := cam.Ray(px, py, fb.Width, fb.Height)
			idx := py*fb.Width + px

			best := fb.Depth[idx]
			var color vecmath.Vector4
			var normal vecmath.Vector3
			hit := false

			for _, s := range spheres {
				t := vecmath.RaySphereIntersection(s.Center.V(), s.Radius, origin, dir)
				if !inRange(t, cam, best) {
					continue
				}
				best, hit = t, true
				p := origin.Add(dir.Mul(t))
				normal = p.Sub(s.Center.V()).Normalize()
				color = s.Color.V()
			}

			for _, pl := range planes {
				t := vecmath.LinePlaneIntersection(pl.Origin.V(), pl.Normal.V(), origin, dir)
				if !inRange(t, cam, best) {
					continue
				}
				best, hit = t, true
				normal = pl.Normal.V().Normalize()
				color = pl.Color.V()
			}

			if !hit {
				continue
			}
			fb.Depth[idx] = best
			fb.blend(idx, lc.Apply(color, normal))
		}
	}
}

// inRange accepts ray parameters inside the camera depth range that are
// nearer than limit. NoIntersection and hits behind the origin fail the
// near test.
func inRange(t float32, cam *camera.Camera, limit float32) bool {
	return t >= cam.Near && t <= cam.Far && t < limit
}
