package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Parallelogram is spanned by a corner P1 and the two adjacent corners P2 and P3.
// The fourth corner is P2 + P3 - P1.
type Parallelogram struct {
	P1, P2, P3 core.Vec3
	normal     core.Vec3
}

// NewParallelogram creates a parallelogram from a corner and its two neighbours
func NewParallelogram(p1, p2, p3 core.Vec3) *Parallelogram {
	return &Parallelogram{
		P1:     p1,
		P2:     p2,
		P3:     p3,
		normal: p2.Subtract(p1).Cross(p3.Subtract(p1)).Normalize(),
	}
}

// NewParallelogramFromEdges creates a parallelogram from a corner and two edge vectors
func NewParallelogramFromEdges(corner, u, v core.Vec3) *Parallelogram {
	return NewParallelogram(corner, corner.Add(u), corner.Add(v))
}

// Hit solves the same planar system as Triangle.Hit and accepts 0 <= u, v <= 1
func (p *Parallelogram) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	u, v, t, ok := solvePlanar(p.P1, p.P2, p.P3, ray)
	if !ok {
		return core.HitPoint{}, false
	}

	if u < 0 || u > 1 || v < 0 || v > 1 || t <= epsilon {
		return core.HitPoint{}, false
	}

	return core.NewHitPoint(ray, t, p.normal), true
}

// BoundingBox returns the box around all four corners
func (p *Parallelogram) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(p.P1, p.P2, p.P3, p.P2.Add(p.P3).Subtract(p.P1))
}

// Centroid returns the intersection of the diagonals
func (p *Parallelogram) Centroid() core.Vec3 {
	return p.P2.Add(p.P3).Multiply(0.5)
}

// Normal returns the unit normal (P2-P1)×(P3-P1)
func (p *Parallelogram) Normal() core.Vec3 {
	return p.normal
}
