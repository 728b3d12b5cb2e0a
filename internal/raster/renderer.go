package raster

import (
	"image"
	"path/filepath"

	"geomkit/internal/camera"
	"geomkit/internal/scene"
	"geomkit/internal/texture"
	"geomkit/pkg/vecmath"
)

var white = vecmath.Vector4{X: 1, Y: 1, Z: 1, W: 1}

// Render draws a scene at supersample times its nominal size. Meshes are
// rasterized first, then spheres and planes are ray-cast against the same
// depth buffer.
func Render(sc *scene.Scene, texResolver texture.Resolver, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	w := sc.Width * supersample
	h := sc.Height * supersample

	cam := camera.New(sc.Camera, float32(w)/float32(h))
	lc := NewLightConfig(sc.Light)

	fb := NewFrameBuffer(w, h)
	fb.Background(sc.Background.Top.V(), sc.Background.Bottom.V())

	for i := range sc.Meshes {
		mesh := &sc.Meshes[i]

		var tex *image.NRGBA
		if mesh.Texture != "" && texResolver != nil {
			path := mesh.Texture
			if !filepath.IsAbs(path) {
				path = filepath.Join(sc.Dir, path)
			}
			tex = texResolver.Resolve(path)
		}

		DrawMesh(fb, cam, mesh, tex, &lc)
	}

	TraceAnalytic(fb, cam, sc.Spheres, sc.Planes, &lc)

	return fb.Image()
}

// DrawMesh transforms a mesh to world space, projects it and rasterizes
// every triangle whose corners all lie inside the camera depth range.
func DrawMesh(fb *FrameBuffer, cam *camera.Camera, mesh *scene.Mesh, tex *image.NRGBA, lc *LightConfig) {
	if len(mesh.Vertices) == 0 || len(mesh.Triangles) == 0 {
		return
	}

	local := make([]vecmath.Vector3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		local[i] = v.V()
	}
	world := make([]vecmath.Vector3, len(local))
	vecmath.TransformPoints(mesh.ModelMatrix(), local, world)

	normals := faceNormals(world, mesh.Triangles)

	for t, tri := range mesh.Triangles {
		if normals[t].SqrMagnitude() == 0 {
			continue
		}

		var verts [3]Vertex
		visible := true
		for k, idx := range tri {
			screen, ok := cam.Project(world[idx], fb.Width, fb.Height)
			if !ok {
				visible = false
				break
			}
			verts[k] = Vertex{Pos: screen, Color: white, InvW: 1}
			if !cam.Ortho {
				verts[k].InvW = 1 / screen.Z
			}
			if len(mesh.Colors) > 0 {
				verts[k].Color = mesh.Colors[idx].V()
			}
			if len(mesh.UVs) > 0 {
				verts[k].UV = vecmath.Vector4{X: mesh.UVs[idx][0], Y: mesh.UVs[idx][1]}
			}
		}
		if !visible {
			continue
		}

		RasterizeTriangle(fb, verts, normals[t].Normalize(), tex, lc)
	}
}

// faceNormals returns the unnormalized normal of each triangle.
func faceNormals(world []vecmath.Vector3, tris [][3]int) []vecmath.Vector3 {
	n := len(tris)
	a := make([]vecmath.Vector3, n)
	b := make([]vecmath.Vector3, n)
	c := make([]vecmath.Vector3, n)
	for i, tri := range tris {
		a[i], b[i], c[i] = world[tri[0]], world[tri[1]], world[tri[2]]
	}

	e1 := make([]vecmath.Vector3, n)
	e2 := make([]vecmath.Vector3, n)
	vecmath.SubAll(b, a, e1)
	vecmath.SubAll(c, a, e2)

	normals := make([]vecmath.Vector3, n)
	vecmath.CrossAll(e1, e2, normals)
	return normals
}
