package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t > epsilon
	Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool)
	BoundingBox() core.AABB
}

// Primitive is a bounded shape that can be partitioned by the BVH builder
type Primitive interface {
	Shape
	Centroid() core.Vec3
}

// LinearNearestHit tests every shape and returns the closest hit and its index.
// Ties keep the first shape found.
func LinearNearestHit[S Shape](shapes []S, ray core.Ray, epsilon float64) (core.HitPoint, int, bool) {
	var closest core.HitPoint
	closestIndex := -1

	for i, shape := range shapes {
		hit, ok := shape.Hit(ray, epsilon)
		if !ok {
			continue
		}
		if closestIndex < 0 || hit.T < closest.T {
			closest = hit
			closestIndex = i
		}
	}

	return closest, closestIndex, closestIndex >= 0
}
