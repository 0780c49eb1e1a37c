package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Relative determinant magnitude below which the system is treated as singular
const singularTolerance = 1e-12

// solvePlanar solves
//
//	u(p1-p2) + v(p1-p3) + t·d = p1 - o
//
// for (u, v, t) by Cramer's rule, so that o + t·d = p1 + u(p2-p1) + v(p3-p1).
// It reports false when the ray is parallel to the plane through the points
// or the points are collinear.
func solvePlanar(p1, p2, p3 core.Vec3, ray core.Ray) (u, v, t float64, ok bool) {
	a := p1.Subtract(p2)
	b := p1.Subtract(p3)
	c := ray.Direction
	r := p1.Subtract(ray.Origin)

	bc := b.Cross(c)
	det := a.Dot(bc)

	scale := a.Length() * b.Length() * c.Length()
	if det == 0 || math.Abs(det) <= singularTolerance*scale {
		return 0, 0, 0, false
	}

	invDet := 1.0 / det
	u = r.Dot(bc) * invDet
	v = a.Dot(r.Cross(c)) * invDet
	t = a.Dot(b.Cross(r)) * invDet
	return u, v, t, true
}
