package raster

import (
	"geomkit/internal/scene"
	"geomkit/pkg/vecmath"

	"github.com/chewxy/math32"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	ToLight vecmath.Vector3 // unit vector pointing at the light
	Ambient float32
}

// NewLightConfig precomputes the light from a scene description.
func NewLightConfig(l scene.Light) LightConfig {
	return LightConfig{
		ToLight: l.Direction.V().Mul(-1).Normalize(),
		Ambient: vecmath.Clamp(l.Ambient, 0, 1),
	}
}

// Shade returns the lighting scalar for a unit normal. Surfaces are lit
// from both sides.
func (lc *LightConfig) Shade(normal vecmath.Vector3) float32 {
	ndl := math32.Abs(normal.Dot(lc.ToLight))
	return lc.Ambient + (1-lc.Ambient)*ndl
}

// Apply modulates the RGB channels of albedo by the shade; alpha is kept.
func (lc *LightConfig) Apply(albedo vecmath.Vector4, normal vecmath.Vector3) vecmath.Vector4 {
	s := lc.Shade(normal)
	return albedo.Scale(vecmath.Vector4{X: s, Y: s, Z: s, W: 1}).Clamp(0, 1)
}
