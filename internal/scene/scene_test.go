package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geomkit/pkg/vecmath"

	"github.com/chewxy/math32"
)

func TestParse_Defaults(t *testing.T) {
	sc, err := Parse([]byte(`{"meshes": [{"scale": [2, 0, 0]}]}`))
	if err != nil {
		t.Fatal(err)
	}

	if sc.Width != DefaultSize || sc.Height != DefaultSize {
		t.Errorf("Size: got %dx%d", sc.Width, sc.Height)
	}
	c := sc.Camera
	if c.Up != (Vec3{0, 1, 0}) || c.FovYDeg != DefaultFovYDeg || c.Near != DefaultNear || c.Far != DefaultFar {
		t.Errorf("Camera defaults: got %+v", c)
	}
	if sc.Light.Direction == (Vec3{}) || sc.Light.Ambient != DefaultAmbient {
		t.Errorf("Light defaults: got %+v", sc.Light)
	}
	if sc.Background.Top[3] != 1 || sc.Background.Bottom[3] != 1 {
		t.Errorf("Background should default to opaque: %+v", sc.Background)
	}
	if got := sc.Meshes[0].Scale; got != (Vec3{2, 1, 1}) {
		t.Errorf("Mesh scale: got %v", got)
	}
}

func TestParse_OrthoSizeDefault(t *testing.T) {
	sc, err := Parse([]byte(`{"camera": {"ortho": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Camera.OrthoSize != 1 {
		t.Errorf("OrthoSize: got %v", sc.Camera.OrthoSize)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"width": "wide"}`)); err == nil {
		t.Error("Expected a decode error")
	}
}

func validScene() *Scene {
	sc, _ := Parse([]byte(`{
	  "camera": {"eye": [0, 0, -5], "target": [0, 0, 0]},
	  "spheres": [{"center": [0, 0, 0], "radius": 1}],
	  "planes": [{"origin": [0, -1, 0], "normal": [0, 1, 0]}],
	  "meshes": [{
	    "vertices": [[0, 0, 0], [1, 0, 0], [0, 1, 0]],
	    "uvs": [[0, 0], [1, 0], [0, 1]],
	    "triangles": [[0, 1, 2]],
	    "texture": "wood.png"
	  }]
	}`))
	return sc
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sc *Scene)
		errSub string
	}{
		{"valid", func(sc *Scene) {}, ""},
		{"zero width", func(sc *Scene) { sc.Width = 0 }, "invalid size"},
		{"near beyond far", func(sc *Scene) { sc.Camera.Near = 200 }, "near"},
		{"negative near", func(sc *Scene) { sc.Camera.Near = -1 }, "near"},
		{"eye on target", func(sc *Scene) { sc.Camera.Eye = sc.Camera.Target }, "coincide"},
		{"fov too wide", func(sc *Scene) { sc.Camera.FovYDeg = 180 }, "fov_y_deg"},
		{"ortho ignores fov", func(sc *Scene) { sc.Camera.Ortho, sc.Camera.OrthoSize, sc.Camera.FovYDeg = true, 2, 0 }, ""},
		{"ortho size", func(sc *Scene) { sc.Camera.Ortho, sc.Camera.OrthoSize = true, -1 }, "ortho_size"},
		{"zero radius", func(sc *Scene) { sc.Spheres[0].Radius = 0 }, "radius"},
		{"zero normal", func(sc *Scene) { sc.Planes[0].Normal = Vec3{} }, "zero normal"},
		{"index out of range", func(sc *Scene) { sc.Meshes[0].Triangles[0][2] = 3 }, "out of range"},
		{"negative index", func(sc *Scene) { sc.Meshes[0].Triangles[0][0] = -1 }, "out of range"},
		{"color count", func(sc *Scene) { sc.Meshes[0].Colors = []Color{{1, 1, 1, 1}} }, "colors"},
		{"uv count", func(sc *Scene) { sc.Meshes[0].UVs = sc.Meshes[0].UVs[:2] }, "uvs"},
		{"texture without uvs", func(sc *Scene) { sc.Meshes[0].UVs = nil }, "without uvs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validScene()
			tt.mutate(sc)
			err := sc.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Expected error containing %q, got %v", tt.errSub, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "still-life.json")
	os.WriteFile(path, []byte(`{"camera": {"eye": [0, 0, -5]}}`), 0o644)

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "still-life" || sc.Dir != dir {
		t.Errorf("Name/Dir: got %q, %q", sc.Name, sc.Dir)
	}

	named := filepath.Join(dir, "other.json")
	os.WriteFile(named, []byte(`{"name": "custom", "camera": {"eye": [0, 0, -5]}}`), 0o644)
	if sc, err := Load(named); err != nil || sc.Name != "custom" {
		t.Errorf("Explicit name: got %v, %v", sc, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{`), 0o644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "scene: parse") {
		t.Errorf("Expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.json")
	os.WriteFile(invalid, []byte(`{}`), 0o644)
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "scene: validate") {
		t.Errorf("Expected validate error, got %v", err)
	}
}

func near3(a, b vecmath.Vector3) bool {
	const eps = 1e-5
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps && math32.Abs(a.Z-b.Z) <= eps
}

func TestMesh_ModelMatrix(t *testing.T) {
	m := Mesh{
		Position: Vec3{1, 2, 3},
		Axis:     Vec3{0, 0, 5},
		AngleDeg: 90,
		Scale:    Vec3{2, 2, 2},
	}
	model := m.ModelMatrix()

	tests := []struct {
		in, expected vecmath.Vector3
	}{
		{vecmath.Vector3{}, vecmath.Vector3{X: 1, Y: 2, Z: 3}},
		{vecmath.Vector3{X: 1}, vecmath.Vector3{X: 1, Y: 4, Z: 3}},
		{vecmath.Vector3{Y: 1}, vecmath.Vector3{X: -1, Y: 2, Z: 3}},
		{vecmath.Vector3{Z: 1}, vecmath.Vector3{X: 1, Y: 2, Z: 5}},
	}
	for _, tt := range tests {
		if got := model.MulPoint(tt.in); !near3(got, tt.expected) {
			t.Errorf("ModelMatrix(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestMesh_NonUniformScale(t *testing.T) {
	m := Mesh{Scale: Vec3{1, 3, 1}, EulerDeg: Vec3{0, 0, 90}}
	// Scale Y first, then rotate 90° about Z: (0,1,0) → (0,3,0) → (-3,0,0).
	if got := m.ModelMatrix().MulPoint(vecmath.Vector3{Y: 1}); !near3(got, vecmath.Vector3{X: -3}) {
		t.Errorf("got %v", got)
	}
}

func TestMesh_RotationMatchesAxisAngle(t *testing.T) {
	euler := Mesh{EulerDeg: Vec3{0, 0, 90}}
	axis := Mesh{Axis: Vec3{0, 0, 1}, AngleDeg: 90}

	v := vecmath.Vector3{X: 1, Y: 2, Z: 3}
	a := euler.Rotation().Rotate(v)
	b := axis.Rotation().Rotate(v)
	if !near3(a, b) {
		t.Errorf("Euler %v vs axis-angle %v", a, b)
	}

	both := Mesh{EulerDeg: Vec3{0, 0, 90}, Axis: Vec3{0, 0, 1}, AngleDeg: 90}
	if got := both.Rotation().Rotate(vecmath.Vector3{X: 1}); !near3(got, vecmath.Vector3{X: -1}) {
		t.Errorf("Composed rotation: got %v", got)
	}
}
