package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if a == 0 || discriminant < 0 {
		return core.HitPoint{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one (ray starting inside)
	root := (-halfB - sqrtD) / a
	if root <= epsilon {
		root = (-halfB + sqrtD) / a
		if root <= epsilon {
			return core.HitPoint{}, false
		}
	}

	point := ray.At(root)
	return core.NewHitPoint(ray, root, s.Normal(point)), true
}

// Normal returns the outward unit normal at a point on the surface
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := math.Abs(s.Radius)
	extent := core.NewVec3(radius, radius, radius)
	return core.NewAABB(
		s.Center.Subtract(extent),
		s.Center.Add(extent),
	)
}

// Centroid returns the sphere center
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}
