package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Mesh is a triangle collection intersected through its own BVH, or by
// brute force when acceleration is disabled
type Mesh struct {
	triangles []Triangle
	bvh       *BVH[Triangle] // nil in brute-force mode
	bbox      core.AABB
}

// MeshOptions contains optional parameters for mesh creation
type MeshOptions struct {
	Split      SplitPolicy // BVH split policy
	BruteForce bool        // Skip the BVH and scan every triangle
	Rotation   *core.Vec3  // Optional rotation (radians, XYZ order) applied to vertices
	Center     *core.Vec3  // Optional pivot for the rotation
	Scale      float64     // Optional uniform scale applied after rotation (0 means 1)
	Translate  *core.Vec3  // Optional translation applied last
}

// NewMesh creates a mesh over triangles. The slice is retained and must not be
// modified afterwards unless a transform is requested, in which case a
// transformed copy is kept instead.
func NewMesh(triangles []Triangle, options *MeshOptions) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrNoPrimitives
	}

	if options == nil {
		options = &MeshOptions{}
	}

	working := triangles
	if options.hasTransform() {
		working = make([]Triangle, len(triangles))
		for i, tri := range triangles {
			working[i] = NewTriangle(
				options.transform(tri.P1),
				options.transform(tri.P2),
				options.transform(tri.P3),
			)
		}
	}

	bbox := core.EmptyAABB()
	for _, tri := range working {
		bbox = bbox.Union(tri.BoundingBox())
	}

	mesh := &Mesh{
		triangles: working,
		bbox:      bbox,
	}

	if !options.BruteForce {
		bvh, err := NewBVH(working, options.Split)
		if err != nil {
			return nil, err
		}
		mesh.bvh = bvh
	}

	return mesh, nil
}

func (o *MeshOptions) hasTransform() bool {
	return o.Rotation != nil || (o.Scale != 0 && o.Scale != 1) || o.Translate != nil
}

func (o *MeshOptions) transform(vertex core.Vec3) core.Vec3 {
	if o.Rotation != nil {
		if o.Center != nil {
			vertex = vertex.Subtract(*o.Center)
		}
		vertex = vertex.Rotate(*o.Rotation)
		if o.Center != nil {
			vertex = vertex.Add(*o.Center)
		}
	}
	if o.Scale != 0 {
		vertex = vertex.Multiply(o.Scale)
	}
	if o.Translate != nil {
		vertex = vertex.Add(*o.Translate)
	}
	return vertex
}

// Hit tests if a ray intersects with any triangle in the mesh
func (m *Mesh) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	if m.bvh != nil {
		return m.bvh.NearestHit(ray, epsilon)
	}
	hit, _, ok := LinearNearestHit(m.triangles, ray, epsilon)
	return hit, ok
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// BVH returns the acceleration structure, or nil in brute-force mode
func (m *Mesh) BVH() *BVH[Triangle] {
	return m.bvh
}

// Accelerated reports whether intersection goes through the BVH
func (m *Mesh) Accelerated() bool {
	return m.bvh != nil
}
