package main

import (
	"fmt"
	"os"

	"geomkit/internal/camera"
	"geomkit/internal/scene"
	"geomkit/pkg/vecmath"

	"github.com/chewxy/math32"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <scene.json>")
		os.Exit(2)
	}
	sc, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cam := camera.New(sc.Camera, float32(sc.Width)/float32(sc.Height))
	fmt.Printf("Scene %q: %dx%d, spheres=%d, planes=%d, meshes=%d\n",
		sc.Name, sc.Width, sc.Height, len(sc.Spheres), len(sc.Planes), len(sc.Meshes))
	fmt.Printf("  Camera: eye=%v forward=%v ortho=%v\n", cam.Eye, cam.Forward, cam.Ortho)
	printMatrix("View", cam.View)
	printMatrix("Proj", cam.Proj)

	for i, s := range sc.Spheres {
		p, ok := cam.Project(s.Center.V(), sc.Width, sc.Height)
		fmt.Printf("  Sphere[%d]: r=%.2f screen=(%.1f, %.1f) depth=%.2f visible=%v\n",
			i, s.Radius, p.X, p.Y, cam.Depth(s.Center.V()), ok)
	}

	for i := range sc.Meshes {
		m := &sc.Meshes[i]
		model := m.ModelMatrix()
		world := make([]vecmath.Vector3, len(m.Vertices))
		for k, v := range m.Vertices {
			world[k] = model.MulPoint(v.V())
		}

		lo := vecmath.Vector3{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}
		hi := vecmath.Vector3{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)}
		for _, v := range world {
			lo = vecmath.Vector3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
			hi = vecmath.Vector3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
		}

		fmt.Printf("  Mesh[%d]: verts=%d, tris=%d, texture=%q\n", i, len(m.Vertices), len(m.Triangles), m.Texture)
		printMatrix("Model", model)
		fmt.Printf("    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)

		// Surface area by dominant normal axis
		areaByDir := map[string]float32{}
		degenerate := 0
		for _, tri := range m.Triangles {
			n := world[tri[1]].Sub(world[tri[0]]).Cross(world[tri[2]].Sub(world[tri[0]]))
			area := 0.5 * n.Magnitude()
			if area == 0 {
				degenerate++
				continue
			}
			areaByDir[dominantAxis(n)] += area
		}
		fmt.Println("    --- Surface area by direction ---")
		for _, d := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
			fmt.Printf("    %s: %.2f sq units\n", d, areaByDir[d])
		}
		if degenerate > 0 {
			fmt.Printf("    degenerate triangles: %d\n", degenerate)
		}

		fmt.Println("    --- Projected vertices ---")
		for k, v := range world {
			p, ok := cam.Project(v, sc.Width, sc.Height)
			if !ok {
				fmt.Printf("    v[%2d] %v clipped (depth %.2f)\n", k, v, cam.Depth(v))
				continue
			}
			fmt.Printf("    v[%2d] screen=(%6.1f, %6.1f) depth=%.2f\n", k, p.X, p.Y, p.Z)
		}
	}
}

func printMatrix(name string, m vecmath.Matrix4x4) {
	fmt.Printf("    %s:\n", name)
	for _, r := range []vecmath.Vector4{m.X, m.Y, m.Z, m.T} {
		fmt.Printf("      [%8.3f %8.3f %8.3f %8.3f]\n", r.X, r.Y, r.Z, r.W)
	}
}

func dominantAxis(n vecmath.Vector3) string {
	ax, ay, az := math32.Abs(n.X), math32.Abs(n.Y), math32.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		if n.X > 0 {
			return "+X"
		}
		return "-X"
	case ay >= az:
		if n.Y > 0 {
			return "+Y"
		}
		return "-Y"
	default:
		if n.Z > 0 {
			return "+Z"
		}
		return "-Z"
	}
}
