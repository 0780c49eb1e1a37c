package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrNoPrimitives is returned when a BVH is requested for an empty primitive set
var ErrNoPrimitives = errors.New("bvh: cannot build over zero primitives")

// SplitPolicy selects how an internal node divides its primitives
type SplitPolicy int

const (
	// SplitInsertionOrder halves the index list in its current order. The
	// tree is valid but its boxes are only as tight as the input ordering.
	SplitInsertionOrder SplitPolicy = iota

	// SplitCentroidMedian sorts indices by primitive centroid along the
	// node's longest axis before halving. Query results are identical;
	// traversal visits fewer nodes.
	SplitCentroidMedian
)

// String returns the flag name of the policy
func (p SplitPolicy) String() string {
	switch p {
	case SplitInsertionOrder:
		return "insertion"
	case SplitCentroidMedian:
		return "median"
	default:
		return fmt.Sprintf("SplitPolicy(%d)", int(p))
	}
}

// ParseSplitPolicy converts a flag value into a SplitPolicy
func ParseSplitPolicy(name string) (SplitPolicy, error) {
	switch name {
	case "", "insertion":
		return SplitInsertionOrder, nil
	case "median":
		return SplitCentroidMedian, nil
	default:
		return 0, fmt.Errorf("unknown split policy %q (expected insertion or median)", name)
	}
}

// BVHNode is a node in the flattened hierarchy. Leaves reference exactly one
// primitive; internal nodes reference exactly two children.
type BVHNode struct {
	Box       core.AABB // Union of every primitive box below this node
	Left      int32     // Left child node index, -1 for leaves
	Right     int32     // Right child node index, -1 for leaves
	Primitive int32     // Primitive index, -1 for internal nodes
}

// IsLeaf reports whether the node references a primitive
func (n BVHNode) IsLeaf() bool {
	return n.Primitive >= 0
}

// BVH is a binary bounding volume hierarchy over a caller-owned primitive slice.
// Nodes live in one arena with the root at index 0. The BVH only stores
// indices into the slice, which must not be modified after construction.
// A built BVH is read-only and safe for concurrent queries.
type BVH[P Primitive] struct {
	primitives []P
	nodes      []BVHNode
	policy     SplitPolicy
}

// NewBVH builds a hierarchy over primitives using the given split policy
func NewBVH[P Primitive](primitives []P, policy SplitPolicy) (*BVH[P], error) {
	if len(primitives) == 0 {
		return nil, ErrNoPrimitives
	}

	indices := make([]int, len(primitives))
	for i := range indices {
		indices[i] = i
	}

	bvh := &BVH[P]{
		primitives: primitives,
		nodes:      make([]BVHNode, 0, 2*len(primitives)-1),
		policy:     policy,
	}
	bvh.build(indices)

	return bvh, nil
}

// MustNewBVH is like NewBVH but panics on an empty primitive set
func MustNewBVH[P Primitive](primitives []P, policy SplitPolicy) *BVH[P] {
	bvh, err := NewBVH(primitives, policy)
	if err != nil {
		panic(err)
	}
	return bvh
}

// build appends the subtree for indices and returns its node index.
// indices is never empty: a set of two or more splits into two non-empty halves.
func (bvh *BVH[P]) build(indices []int) int32 {
	box := core.EmptyAABB()
	for _, idx := range indices {
		box = box.Union(bvh.primitives[idx].BoundingBox())
	}

	nodeIndex := int32(len(bvh.nodes))
	bvh.nodes = append(bvh.nodes, BVHNode{
		Box:       box,
		Left:      -1,
		Right:     -1,
		Primitive: -1,
	})

	if len(indices) == 1 {
		bvh.nodes[nodeIndex].Primitive = int32(indices[0])
		return nodeIndex
	}

	if bvh.policy == SplitCentroidMedian {
		bvh.sortByCentroid(indices, box.LongestAxis())
	}

	mid := len(indices) / 2
	left := bvh.build(indices[:mid])
	right := bvh.build(indices[mid:])

	bvh.nodes[nodeIndex].Left = left
	bvh.nodes[nodeIndex].Right = right
	return nodeIndex
}

// sortByCentroid orders indices by primitive centroid along axis
func (bvh *BVH[P]) sortByCentroid(indices []int, axis int) {
	sort.SliceStable(indices, func(i, j int) bool {
		return bvh.primitives[indices[i]].Centroid().Axis(axis) <
			bvh.primitives[indices[j]].Centroid().Axis(axis)
	})
}

// NearestHit returns the closest primitive hit with t > epsilon
func (bvh *BVH[P]) NearestHit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	hit, _, ok := bvh.NearestHitIndex(ray, epsilon)
	return hit, ok
}

// NearestHitIndex is NearestHit that also reports the primitive index.
//
// Traversal is depth-first with an explicit stack. Both children of a node
// whose box passes the conservative slab test are visited, so every primitive
// the ray can hit is tested and the result equals a linear scan. Ties keep the first hit found.
func (bvh *BVH[P]) NearestHitIndex(ray core.Ray, epsilon float64) (core.HitPoint, int, bool) {
	var closest core.HitPoint
	closestIndex := -1

	invDir := ray.InverseDirection()

	var buf [64]int32
	stack := append(buf[:0], 0)

	for len(stack) > 0 {
		node := bvh.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if !node.Box.IntersectsInverse(ray.Origin, invDir) {
			continue
		}

		if node.IsLeaf() {
			hit, ok := bvh.primitives[node.Primitive].Hit(ray, epsilon)
			if ok && (closestIndex < 0 || hit.T < closest.T) {
				closest = hit
				closestIndex = int(node.Primitive)
			}
			continue
		}

		stack = append(stack, node.Left, node.Right)
	}

	return closest, closestIndex, closestIndex >= 0
}

// Hit implements Shape
func (bvh *BVH[P]) Hit(ray core.Ray, epsilon float64) (core.HitPoint, bool) {
	return bvh.NearestHit(ray, epsilon)
}

// BoundingBox implements Shape - returns the root box
func (bvh *BVH[P]) BoundingBox() core.AABB {
	return bvh.nodes[0].Box
}

// Nodes returns the node arena, root first. Callers must not modify it.
func (bvh *BVH[P]) Nodes() []BVHNode {
	return bvh.nodes
}

// Primitives returns the primitive slice the hierarchy indexes into
func (bvh *BVH[P]) Primitives() []P {
	return bvh.primitives
}

// Policy returns the split policy the tree was built with
func (bvh *BVH[P]) Policy() SplitPolicy {
	return bvh.policy
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes         int
	Leaves        int
	InternalNodes int
	MaxDepth      int
	AvgLeafDepth  float64
	RootSurface   float64 // Surface area of the root box
	LeafSurface   float64 // Summed surface area of leaf boxes
}

// Stats collects structural statistics
func (bvh *BVH[P]) Stats() BVHStats {
	stats := BVHStats{
		Nodes:       len(bvh.nodes),
		RootSurface: bvh.nodes[0].Box.SurfaceArea(),
	}

	for _, node := range bvh.nodes {
		if node.IsLeaf() {
			stats.Leaves++
			stats.LeafSurface += node.Box.SurfaceArea()
		} else {
			stats.InternalNodes++
		}
	}

	depthSum := 0
	for _, depth := range bvh.LeafDepths() {
		stats.MaxDepth = max(stats.MaxDepth, depth)
		depthSum += depth
	}
	stats.AvgLeafDepth = float64(depthSum) / float64(stats.Leaves)

	return stats
}

// LeafDepths returns the depth of every leaf, root at depth 0, in depth-first order
func (bvh *BVH[P]) LeafDepths() []int {
	type entry struct {
		node  int32
		depth int
	}

	depths := make([]int, 0, len(bvh.primitives))
	stack := []entry{{node: 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := bvh.nodes[e.node]
		if node.IsLeaf() {
			depths = append(depths, e.depth)
			continue
		}
		stack = append(stack,
			entry{node: node.Left, depth: e.depth + 1},
			entry{node: node.Right, depth: e.depth + 1},
		)
	}
	return depths
}

// BreadthFirst visits every node level by level, root first
func (bvh *BVH[P]) BreadthFirst(visit func(id int, node BVHNode)) {
	queue := []int32{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := bvh.nodes[id]
		visit(int(id), node)
		if !node.IsLeaf() {
			queue = append(queue, node.Left, node.Right)
		}
	}
}

// InOrder visits every node left subtree first, then the node, then the right subtree
func (bvh *BVH[P]) InOrder(visit func(id int, node BVHNode)) {
	var stack []int32
	current := int32(0)

	for current >= 0 || len(stack) > 0 {
		for current >= 0 {
			stack = append(stack, current)
			current = bvh.nodes[current].Left
		}

		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(int(id), bvh.nodes[id])
		current = bvh.nodes[id].Right
	}
}
