package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box from parallelograms with a point
// light under the ceiling, a matte sphere and a mirror sphere
func NewCornellScene(opts Options) (*Scene, error) {
	defaults := geometry.CameraConfig{
		Position:    core.NewVec3(0, 0, 3.5),
		FOV:         math.Pi / 6,
		FocalLength: 1,
		Width:       400,
		Height:      400,
		Projection:  geometry.Perspective,
	}

	s := NewScene(cameraFor(defaults, opts))
	s.Ambient = core.NewVec3(0.1, 0.1, 0.1)
	s.Bounces = 3

	white := material.Matte(core.NewVec3(0.73, 0.73, 0.73))
	red := material.Matte(core.NewVec3(0.65, 0.05, 0.05))
	green := material.Matte(core.NewVec3(0.12, 0.45, 0.15))

	// Box spans [-1,1] on every axis with the front (z=+1) open
	size := 2.0
	corner := core.NewVec3(-1, -1, -1)

	// Floor - XZ plane at y=-1
	s.AddWithMaterial("floor", geometry.NewParallelogramFromEdges(
		corner, core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size)), white)

	// Ceiling - XZ plane at y=1
	s.AddWithMaterial("ceiling", geometry.NewParallelogramFromEdges(
		core.NewVec3(-1, 1, -1), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size)), white)

	// Back wall - XY plane at z=-1
	s.AddWithMaterial("back", geometry.NewParallelogramFromEdges(
		corner, core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0)), white)

	// Left wall (red) - YZ plane at x=-1
	s.AddWithMaterial("left", geometry.NewParallelogramFromEdges(
		corner, core.NewVec3(0, size, 0), core.NewVec3(0, 0, size)), red)

	// Right wall (green) - YZ plane at x=1
	s.AddWithMaterial("right", geometry.NewParallelogramFromEdges(
		core.NewVec3(1, -1, -1), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size)), green)

	s.AddWithMaterial("matte sphere", geometry.NewSphere(core.NewVec3(-0.4, -0.65, -0.3), 0.35), white)
	s.AddWithMaterial("mirror sphere", geometry.NewSphere(core.NewVec3(0.45, -0.6, 0.2), 0.4),
		material.Mirror(core.NewVec3(0.9, 0.9, 0.9)))

	s.AddPointLight(core.NewVec3(0, 0.9, 0), core.NewVec3(1.5, 1.45, 1.3))

	return s, nil
}
