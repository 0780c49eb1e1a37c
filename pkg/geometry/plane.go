package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal vector
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(), // Ensure normal is normalized
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-12 {
		return core.HitPoint{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= epsilon {
		return core.HitPoint{}, false
	}

	return core.NewHitPoint(ray, t, p.Normal), true
}

// BoundingBox returns a bounding box for this plane
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const thickness = 0.001 // Avoid a zero-width box

	// Axis-aligned planes get a thin slab along their normal axis
	switch {
	case math.Abs(p.Normal.X) == 1:
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-thickness, -largeValue, -largeValue),
			core.NewVec3(x+thickness, largeValue, largeValue),
		)
	case math.Abs(p.Normal.Y) == 1:
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-thickness, -largeValue),
			core.NewVec3(largeValue, y+thickness, largeValue),
		)
	case math.Abs(p.Normal.Z) == 1:
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-thickness),
			core.NewVec3(largeValue, largeValue, z+thickness),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
