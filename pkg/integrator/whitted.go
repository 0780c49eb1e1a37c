package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains the self-intersection thresholds of the Whitted integrator
type Config struct {
	Epsilon          float64 // Minimum accepted hit distance for every query
	ReflectionOffset float64 // Distance a reflected ray starts from its surface
}

// DefaultConfig returns the reference thresholds
func DefaultConfig() Config {
	return Config{
		Epsilon:          core.DefaultEpsilon,
		ReflectionOffset: 1e-4,
	}
}

// Whitted combines Blinn-Phong direct lighting with hard shadows and
// recursive mirror reflection
type Whitted struct {
	config Config
}

// NewWhitted creates a Whitted integrator
func NewWhitted(config Config) *Whitted {
	return &Whitted{config: config}
}

// Config returns the integrator thresholds
func (w *Whitted) Config() Config {
	return w.config
}

// ShootRay implements the Integrator interface. Each hit spawns at most one
// reflection ray and bounces decreases by one per level, so the work is linear
// in bounces.
func (w *Whitted) ShootRay(ray core.Ray, s *scene.Scene, mat material.Material, bounces int) core.RGBA {
	hit, obj, ok := s.NearestHit(ray, w.config.Epsilon)
	if !ok {
		return s.Background
	}

	surface := mat
	if obj.Material != nil {
		surface = *obj.Material
	}

	color := surface.Ambient.MultiplyVec(s.Ambient)
	color = color.Add(w.directLighting(ray, hit, s, surface))

	if bounces > 0 && surface.IsReflective() {
		reflected := ray.Direction.Reflect(hit.Normal)
		origin := hit.Point.Add(reflected.Multiply(w.config.ReflectionOffset))

		bounce := w.ShootRay(core.NewRay(origin, reflected), s, mat, bounces-1)
		color = color.Add(surface.Reflection.MultiplyVec(bounce.RGB()))
	}

	return core.Opaque(color)
}

// directLighting sums the Blinn-Phong response of every unoccluded light
func (w *Whitted) directLighting(ray core.Ray, hit core.HitPoint, s *scene.Scene, surface material.Material) core.Vec3 {
	total := core.Vec3{}

	for _, light := range s.Lights {
		sample := light.Sample(hit.Point)
		if sample.Distance == 0 {
			continue
		}

		if w.occluded(hit.Point, sample, s) {
			continue
		}

		response := surface.BlinnPhong(hit.Normal, sample.Direction, ray.Direction)
		falloff := 1.0 / (sample.Distance * sample.Distance)
		total = total.Add(response.MultiplyVec(sample.Radiance).Multiply(falloff))
	}

	return total
}

// occluded reports whether anything lies strictly between point and the light
func (w *Whitted) occluded(point core.Vec3, sample lights.LightSample, s *scene.Scene) bool {
	shadow, _, ok := s.NearestHit(core.NewRay(point, sample.Direction), w.config.Epsilon)
	return ok && shadow.T < sample.Distance
}
