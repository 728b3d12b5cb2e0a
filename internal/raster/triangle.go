package raster

import (
	"image"

	"geomkit/pkg/vecmath"

	"github.com/chewxy/math32"
)

// Vertex is a projected triangle corner.
type Vertex struct {
	Pos   vecmath.Vector3 // pixel x, pixel y, view depth
	Color vecmath.Vector4
	UV    vecmath.Vector4 // u, v in X, Y
	InvW  float32         // 1/depth under perspective, 1 for orthographic
}

// insideEps admits pixels sitting exactly on a shared edge.
const insideEps = -1e-4

// RasterizeTriangle fills a triangle with interpolated vertex colors,
// optional texture, depth test and flat shading from normal.
// Depth and attributes are interpolated perspective-correctly: screen
// weights are scaled by each corner's InvW and renormalized.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, normal vecmath.Vector3, tex *image.NRGBA, lc *LightConfig) {
	p0, p1, p2 := v[0].Pos, v[1].Pos, v[2].Pos

	// Zero-area triangles would divide by zero in Barycentric.
	area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
	if math32.Abs(area) < 1e-8 {
		return
	}

	// Bounding box
	minX := vecmath.Clamp(int(math32.Floor(vecmath.Min3(p0.X, p1.X, p2.X))), 0, fb.Width-1)
	maxX := vecmath.Clamp(int(math32.Ceil(vecmath.Max3(p0.X, p1.X, p2.X))), 0, fb.Width-1)
	minY := vecmath.Clamp(int(math32.Floor(vecmath.Min3(p0.Y, p1.Y, p2.Y))), 0, fb.Height-1)
	maxY := vecmath.Clamp(int(math32.Ceil(vecmath.Max3(p0.Y, p1.Y, p2.Y))), 0, fb.Height-1)

	depths := vecmath.Vector3{X: p0.Z, Y: p1.Z, Z: p2.Z}
	invW := vecmath.Vector3{X: v[0].InvW, Y: v[1].InvW, Z: v[2].InvW}
	shade := lc.Shade(normal)
	lit := vecmath.Vector4{X: shade, Y: shade, Z: shade, W: 1}

	for sy := minY; sy <= maxY; sy++ {
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			pos := vecmath.Vector3{X: float32(sx) + 0.5, Y: float32(sy) + 0.5}
			bary := vecmath.Barycentric(p0, p1, p2, pos)
			if bary.X < insideEps || bary.Y < insideEps || bary.Z < insideEps {
				continue
			}

			idx := rowOff + sx
			bary = perspectiveWeights(bary, invW)
			z := depths.Dot(bary)
			if z >= fb.Depth[idx] {
				continue
			}

			c := vecmath.InterpolatedFromBarycentric(v[0].Color, v[1].Color, v[2].Color, bary)
			if tex != nil {
				uv := vecmath.InterpolatedFromBarycentric(v[0].UV, v[1].UV, v[2].UV, bary)
				c = c.Scale(SampleTexture(tex, uv.X, uv.Y))
			}

			// Skip transparent texels
			if c.W < 8.0/255 {
				continue
			}
			fb.Depth[idx] = z
			fb.blend(idx, c.Scale(lit).Clamp(0, 1))
		}
	}
}

// blend composites src over the pixel at idx.
func (fb *FrameBuffer) blend(idx int, src vecmath.Vector4) {
	dst := fb.Color[idx]
	out := vecmath.Lerp(dst, src, src.W)
	out.W = src.W + dst.W*(1-src.W)
	fb.Color[idx] = out
}

// perspectiveWeights turns screen-space barycentric weights into weights
// that interpolate view-space attributes linearly.
func perspectiveWeights(bary, invW vecmath.Vector3) vecmath.Vector3 {
	w := bary.Scale(invW)
	return w.Mul(1 / (w.X + w.Y + w.Z))
}
