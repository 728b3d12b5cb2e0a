package scene

import "geomkit/pkg/vecmath"

// Vec3 is a JSON triple, e.g. [1, 2, 3].
type Vec3 [3]float32

func (v Vec3) V() vecmath.Vector3 {
	return vecmath.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Color is an RGBA quadruple in linear [0,1] units.
type Color [4]float32

func (c Color) V() vecmath.Vector4 {
	return vecmath.Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

// Camera describes the viewpoint. Angles are in degrees in the file.
type Camera struct {
	Eye       Vec3    `json:"eye"`
	Target    Vec3    `json:"target"`
	Up        Vec3    `json:"up"`
	FovYDeg   float32 `json:"fov_y_deg"`
	Near      float32 `json:"near"`
	Far       float32 `json:"far"`
	Ortho     bool    `json:"ortho"`
	OrthoSize float32 `json:"ortho_size"` // half-height of the ortho box
}

// Light is a single directional light plus an ambient term.
type Light struct {
	Direction Vec3    `json:"direction"` // direction the light travels
	Ambient   float32 `json:"ambient"`
}

// Background is a vertical gradient from Bottom to Top.
type Background struct {
	Top    Color `json:"top"`
	Bottom Color `json:"bottom"`
}

type Sphere struct {
	Center Vec3    `json:"center"`
	Radius float32 `json:"radius"`
	Color  Color   `json:"color"`
}

// Plane is infinite; it is drawn wherever the primary ray meets it in front
// of the camera.
type Plane struct {
	Origin Vec3  `json:"origin"`
	Normal Vec3  `json:"normal"`
	Color  Color `json:"color"`
}

// Mesh is an indexed triangle list in model space.
type Mesh struct {
	Vertices  []Vec3       `json:"vertices"`
	Colors    []Color      `json:"colors,omitempty"` // per vertex; defaults to white
	UVs       [][2]float32 `json:"uvs,omitempty"`    // per vertex
	Triangles [][3]int     `json:"triangles"`
	Texture   string       `json:"texture,omitempty"` // path relative to the scene file

	Position Vec3    `json:"position"`
	Axis     Vec3    `json:"axis"`      // rotation axis; zero means none
	AngleDeg float32 `json:"angle_deg"` // rotation about Axis
	EulerDeg Vec3    `json:"euler_deg"` // XYZ Euler rotation applied before Axis
	Scale    Vec3    `json:"scale"`     // zero components mean 1
}

// Scene is one renderable file.
type Scene struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Camera     Camera     `json:"camera"`
	Light      Light      `json:"light"`
	Background Background `json:"background"`
	Spheres    []Sphere   `json:"spheres"`
	Planes     []Plane    `json:"planes"`
	Meshes     []Mesh     `json:"meshes"`

	// Dir is the directory the scene was loaded from; textures resolve
	// against it.
	Dir string `json:"-"`
}
