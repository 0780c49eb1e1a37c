package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light interface for emitters evaluated by direct lighting
type Light interface {
	// Sample returns the light as seen from point
	Sample(point core.Vec3) LightSample
}

// LightSample contains what a shading point needs from a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Radiance  core.Vec3 // Color times intensity, before distance falloff
}
