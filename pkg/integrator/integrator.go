package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// ShootRay returns the color seen along ray. mat is used for objects
	// without their own material; bounces limits recursive reflection.
	ShootRay(ray core.Ray, s *scene.Scene, mat material.Material, bounces int) core.RGBA
}
