package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	P1, P2, P3 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached plane normal (P2-P1)×(P3-P1), normalized
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(p1, p2, p3 core.Vec3) Triangle {
	return Triangle{
		P1:     p1,
		P2:     p2,
		P3:     p3,
		normal: p2.Subtract(p1).Cross(p3.Subtract(p1)).Normalize(),
	}
}

// Hit intersects the ray with the triangle by solving for barycentric (u, v)
// and distance t.
//
// A hit requires u >= 0, v >= 0, u+v < 1 and t > epsilon. Points with u+v == 1
// lie on the P2-P3 edge and belong to neither triangle sharing it.
func (tri Triangle) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	u, v, t, ok := solvePlanar(tri.P1, tri.P2, tri.P3, ray)
	if !ok {
		return core.HitPoint{}, false
	}

	if u < 0 || v < 0 || u+v >= 1 || t <= epsilon {
		return core.HitPoint{}, false
	}

	return core.NewHitPoint(ray, t, tri.normal), true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (tri Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(tri.P1, tri.P2, tri.P3)
}

// Centroid returns the mean of the three vertices
func (tri Triangle) Centroid() core.Vec3 {
	return tri.P1.Add(tri.P2).Add(tri.P3).Multiply(1.0 / 3.0)
}

// Normal returns the triangle's plane normal (zero for degenerate triangles)
func (tri Triangle) Normal() core.Vec3 {
	return tri.normal
}

// Vertices returns the three vertices in order
func (tri Triangle) Vertices() [3]core.Vec3 {
	return [3]core.Vec3{tri.P1, tri.P2, tri.P3}
}
