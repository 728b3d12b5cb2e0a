package raster

import (
	"image"

	"geomkit/pkg/vecmath"

	"github.com/chewxy/math32"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []vecmath.Vector4 // linear RGBA per pixel, len = W*H
	Depth  []float32         // view depth per pixel, len = W*H, initialized to +inf
}

// NewFrameBuffer allocates a transparent color buffer and +inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float32, n)
	for i := range depth {
		depth[i] = math32.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]vecmath.Vector4, n),
		Depth:  depth,
	}
}

// Background fills every pixel with a vertical gradient, bottom at the last
// row and top at the first. Depth is left untouched.
func (fb *FrameBuffer) Background(top, bottom vecmath.Vector4) {
	for y := 0; y < fb.Height; y++ {
		t := 1 - (float32(y)+0.5)/float32(fb.Height)
		c := vecmath.Lerp(bottom, top, t)
		row := fb.Color[y*fb.Width : (y+1)*fb.Width]
		for x := range row {
			row[x] = c
		}
	}
}

// Image converts the buffer to 8-bit NRGBA, clamping each channel to [0,1].
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Color {
		c = c.Clamp(0, 1)
		img.Pix[i*4] = uint8(vecmath.IRound(c.X * 255))
		img.Pix[i*4+1] = uint8(vecmath.IRound(c.Y * 255))
		img.Pix[i*4+2] = uint8(vecmath.IRound(c.Z * 255))
		img.Pix[i*4+3] = uint8(vecmath.IRound(c.W * 255))
	}
	return img
}
