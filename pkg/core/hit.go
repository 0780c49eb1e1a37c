package core

// DefaultEpsilon is the minimum accepted hit distance. Rays spawned from a
// surface (shadow and reflection rays) would otherwise re-hit that surface.
const DefaultEpsilon = 1e-6

// HitPoint describes the nearest intersection of a ray with a surface
type HitPoint struct {
	T      float64 // Distance along the ray, in units of the ray direction
	Point  Vec3    // World-space intersection point
	Normal Vec3    // Unit normal, oriented against the incoming ray
}

// NewHitPoint builds a hit at distance t, flipping outwardNormal to face the ray
func NewHitPoint(ray Ray, t float64, outwardNormal Vec3) HitPoint {
	normal := outwardNormal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}
	return HitPoint{
		T:      t,
		Point:  ray.At(t),
		Normal: normal,
	}
}
