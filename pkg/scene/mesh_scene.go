package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// NewMeshScene renders a single mesh with the row of point lights. The mesh is
// loaded from opts.MeshPath, or tessellated from a sphere when no path is given.
func NewMeshScene(opts Options) (*Scene, error) {
	s := NewScene(cameraFor(geometry.DefaultCameraConfig(), opts))
	s.Ambient = core.NewVec3(0.4, 0.4, 0.4)
	s.Background = core.Opaque(core.NewVec3(0, 0.1, 0.7))

	addLightRow(s)

	var triangles []geometry.Triangle
	name := "sphere mesh"
	if opts.MeshPath != "" {
		var err error
		triangles, err = loaders.LoadMesh(opts.MeshPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh: %w", err)
		}
		name = opts.MeshPath
	} else {
		triangles = TessellateSphere(core.NewVec3(0, 0, -2), 1, 24, 48)
	}

	mesh, err := geometry.NewMesh(triangles, &opts.Mesh)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh %s: %w", name, err)
	}
	s.Add(name, mesh)

	return s, nil
}

// TessellateSphere approximates a sphere with stacks*slices quads split into
// triangles; the pole rows produce degenerate triangles which never hit
func TessellateSphere(center core.Vec3, radius float64, stacks, slices int) []geometry.Triangle {
	point := func(stack, slice int) core.Vec3 {
		theta := math.Pi * float64(stack) / float64(stacks)
		phi := 2 * math.Pi * float64(slice) / float64(slices)
		return center.Add(core.NewVec3(
			radius*math.Sin(theta)*math.Cos(phi),
			radius*math.Cos(theta),
			radius*math.Sin(theta)*math.Sin(phi),
		))
	}

	triangles := make([]geometry.Triangle, 0, 2*stacks*slices)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i+1, j+1)
			d := point(i, j+1)
			triangles = append(triangles,
				geometry.NewTriangle(a, b, c),
				geometry.NewTriangle(a, c, d),
			)
		}
	}
	return triangles
}
