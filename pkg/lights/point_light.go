package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits from a single position
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a point light with intensity 1; brightness lives in color
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: 1,
	}
}

// Sample implements the Light interface
func (l *PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()

	var direction core.Vec3
	if distance > 0 {
		direction = toLight.Multiply(1.0 / distance)
	}

	return LightSample{
		Direction: direction,
		Distance:  distance,
		Radiance:  l.Color.Multiply(l.Intensity),
	}
}
