package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the inverted box (+Inf min, -Inf max) that any Extend or Union replaces
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	aabb := EmptyAABB()
	for _, point := range points {
		aabb.Extend(point)
	}
	return aabb
}

// Extend grows the box to include point
func (aabb *AABB) Extend(point Vec3) {
	aabb.Min = Vec3{
		X: math.Min(aabb.Min.X, point.X),
		Y: math.Min(aabb.Min.Y, point.Y),
		Z: math.Min(aabb.Min.Z, point.Z),
	}
	aabb.Max = Vec3{
		X: math.Max(aabb.Max.X, point.X),
		Y: math.Max(aabb.Max.Y, point.Y),
		Z: math.Max(aabb.Max.Z, point.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether point lies inside the box, boundary included
func (aabb AABB) Contains(point Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// Intersects tests the ray against the box using the slab method
func (aabb AABB) Intersects(ray Ray) bool {
	return aabb.IntersectsInverse(ray.Origin, ray.InverseDirection())
}

// slabSlack widens the exit parameter relative to its magnitude. A ray through
// a box corner or edge has tmin == tmax exactly; rounding can leave tmin a few
// ulp above tmax while the primitive test still accepts the hit.
const slabSlack = 1e-9

// IntersectsInverse is the slab test with a precomputed inverse direction.
// The test is conservative: rays grazing an edge or corner are kept.
//
// Axis-aligned rays carry ±Inf in invDir. A ray lying exactly on a slab plane
// produces NaN there; that axis then places no constraint on the interval.
func (aabb AABB) IntersectsInverse(origin, invDir Vec3) bool {
	txMin, txMax := slab(aabb.Min.X, aabb.Max.X, origin.X, invDir.X)
	tyMin, tyMax := slab(aabb.Min.Y, aabb.Max.Y, origin.Y, invDir.Y)
	tzMin, tzMax := slab(aabb.Min.Z, aabb.Max.Z, origin.Z, invDir.Z)

	tmin := math.Max(math.Max(txMin, tyMin), tzMin)
	tmax := math.Min(math.Min(txMax, tyMax), tzMax)
	if !math.IsInf(tmax, 0) {
		tmax += math.Abs(tmax) * slabSlack
	}

	return !(tmax < 0 || tmin > tmax)
}

// slab returns the ordered entry/exit parameters for one axis
func slab(min, max, origin, invDir float64) (float64, float64) {
	t1 := (min - origin) * invDir
	t2 := (max - origin) * invDir
	if math.IsNaN(t1) || math.IsNaN(t2) {
		return math.Inf(-1), math.Inf(1)
	}
	if t1 > t2 {
		return t2, t1
	}
	return t1, t2
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}
