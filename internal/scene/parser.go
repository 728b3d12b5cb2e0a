package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"geomkit/pkg/vecmath"
)

// Defaults applied by Load to fields left at zero.
const (
	DefaultSize    = 256
	DefaultFovYDeg = 60
	DefaultNear    = 0.1
	DefaultFar     = 100
	DefaultAmbient = 0.15
)

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sc.Dir = filepath.Dir(path)

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: validate %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes scene JSON and fills defaults. It does not validate.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	sc.applyDefaults()
	return &sc, nil
}

func (sc *Scene) applyDefaults() {
	if sc.Width == 0 {
		sc.Width = DefaultSize
	}
	if sc.Height == 0 {
		sc.Height = DefaultSize
	}

	c := &sc.Camera
	if c.Up == (Vec3{}) {
		c.Up = Vec3{0, 1, 0}
	}
	if c.FovYDeg == 0 {
		c.FovYDeg = DefaultFovYDeg
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.Ortho && c.OrthoSize == 0 {
		c.OrthoSize = 1
	}

	if sc.Light.Direction == (Vec3{}) {
		sc.Light.Direction = Vec3{-1, -1, 1}
	}
	if sc.Light.Ambient == 0 {
		sc.Light.Ambient = DefaultAmbient
	}
	if sc.Background == (Background{}) {
		sc.Background = Background{
			Top:    Color{0.55, 0.7, 0.95, 1},
			Bottom: Color{1, 1, 1, 1},
		}
	}

	for i := range sc.Meshes {
		m := &sc.Meshes[i]
		for k := 0; k < 3; k++ {
			if m.Scale[k] == 0 {
				m.Scale[k] = 1
			}
		}
	}
}

// Validate rejects scenes that would render nonsense or index out of range.
// Degenerate geometry (zero-area triangles, up parallel to the view
// direction) is left to the renderer.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", sc.Width, sc.Height)
	}

	c := sc.Camera
	if c.Near <= 0 || c.Near >= c.Far {
		return fmt.Errorf("camera: near %g must be in (0, far=%g)", c.Near, c.Far)
	}
	if c.Eye == c.Target {
		return fmt.Errorf("camera: eye and target coincide")
	}
	if !c.Ortho && (c.FovYDeg <= 0 || c.FovYDeg >= 180) {
		return fmt.Errorf("camera: fov_y_deg %g out of range", c.FovYDeg)
	}
	if c.Ortho && c.OrthoSize <= 0 {
		return fmt.Errorf("camera: ortho_size %g must be positive", c.OrthoSize)
	}

	for i, s := range sc.Spheres {
		if s.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius %g must be positive", i, s.Radius)
		}
	}
	for i, p := range sc.Planes {
		if p.Normal == (Vec3{}) {
			return fmt.Errorf("plane %d: zero normal", i)
		}
	}
	for i, m := range sc.Meshes {
		if err := m.validate(); err != nil {
			return fmt.Errorf("mesh %d: %w", i, err)
		}
	}
	return nil
}

func (m *Mesh) validate() error {
	n := len(m.Vertices)
	if len(m.Colors) != 0 && len(m.Colors) != n {
		return fmt.Errorf("%d colors for %d vertices", len(m.Colors), n)
	}
	if len(m.UVs) != 0 && len(m.UVs) != n {
		return fmt.Errorf("%d uvs for %d vertices", len(m.UVs), n)
	}
	if m.Texture != "" && len(m.UVs) == 0 {
		return fmt.Errorf("texture %q without uvs", m.Texture)
	}
	for t, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= n {
				return fmt.Errorf("triangle %d: index %d out of range [0,%d)", t, idx, n)
			}
		}
	}
	return nil
}

// Rotation returns the mesh orientation: the Euler rotation followed by the
// axis-angle rotation.
func (m *Mesh) Rotation() vecmath.Quaternion {
	e := m.EulerDeg
	q := vecmath.EulerToQuaternion(vecmath.Deg2Rad(e[0]), vecmath.Deg2Rad(e[1]), vecmath.Deg2Rad(e[2]))
	if m.Axis == (Vec3{}) || m.AngleDeg == 0 {
		return q
	}
	aa := vecmath.AxisAngle(m.Axis.V().Normalize(), vecmath.Deg2Rad(m.AngleDeg))
	return aa.Mul(q)
}

// ModelMatrix maps model space to world space: scale, then rotate, then
// translate.
func (m *Mesh) ModelMatrix() vecmath.Matrix4x4 {
	r := m.Rotation().ToMat4x4()
	s := m.Scale
	r = vecmath.SetBase(r,
		r.Column(0).XYZ().Mul(s[0]),
		r.Column(1).XYZ().Mul(s[1]),
		r.Column(2).XYZ().Mul(s[2]),
	)
	return vecmath.Mat4Mul(vecmath.Translation(m.Position.V()), r)
}
