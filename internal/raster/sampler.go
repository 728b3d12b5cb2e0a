package raster

import (
	"image"

	"geomkit/pkg/vecmath"
)

// SampleTexture performs bilinear filtering with UV wrapping and returns
// RGBA in [0,1]. v=0 is the top row. Accesses tex.Pix directly.
func SampleTexture(tex *image.NRGBA, u, v float32) vecmath.Vector4 {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return vecmath.Vector4{X: 1, Y: 1, Z: 1, W: 1}
	}

	// Wrap UVs
	u = u - float32(int(u))
	if u < 0 {
		u += 1
	}
	v = v - float32(int(v))
	if v < 0 {
		v += 1
	}

	fx := u * float32(w-1)
	fy := v * float32(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	texel := func(x, y int) vecmath.Vector4 {
		i := y*tex.Stride + x*4
		p := tex.Pix[i : i+4 : i+4]
		return vecmath.Vector4{X: float32(p[0]), Y: float32(p[1]), Z: float32(p[2]), W: float32(p[3])}.Mul(1.0 / 255)
	}

	top := vecmath.Lerp(texel(x0, y0), texel(x1, y0), dx)
	bottom := vecmath.Lerp(texel(x0, y1), texel(x1, y1), dx)
	return vecmath.Lerp(top, bottom, dy)
}
