package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres over a floor, lit by a row of point lights
func NewDefaultScene(opts Options) (*Scene, error) {
	s := NewScene(cameraFor(geometry.DefaultCameraConfig(), opts))
	s.Ambient = core.NewVec3(0.4, 0.4, 0.4)
	s.Background = core.Opaque(core.NewVec3(0, 0.1, 0.7))

	addLightRow(s)

	// Floor spans x,z in [-6,6]x[-10,2] at y=-1
	floor := geometry.NewParallelogramFromEdges(
		core.NewVec3(-6, -1, 2),
		core.NewVec3(12, 0, 0),
		core.NewVec3(0, 0, -12),
	)
	s.AddWithMaterial("floor", floor, material.Matte(core.NewVec3(0.6, 0.6, 0.6)))

	s.Add("center", geometry.NewSphere(core.NewVec3(0, 0, -3), 1))
	s.AddWithMaterial("left", geometry.NewSphere(core.NewVec3(-2.2, -0.4, -3.5), 0.6),
		material.Matte(core.NewVec3(0.1, 0.5, 0.1)))
	s.AddWithMaterial("right", geometry.NewSphere(core.NewVec3(2.2, -0.4, -3.5), 0.6),
		material.Mirror(core.NewVec3(0.8, 0.8, 0.8)))

	return s, nil
}

// addLightRow adds seven white point lights alternating above and below the x axis
func addLightRow(s *Scene) {
	color := core.NewVec3(16, 16, 16)
	for i := 0; i < 7; i++ {
		x := 8 - 2*float64(i)
		y := 8.0
		if i%2 == 1 {
			y = -8
		}
		s.AddPointLight(core.NewVec3(x, y, 0), color)
	}
}
