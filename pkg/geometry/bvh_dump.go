package geometry

import (
	"bufio"
	"fmt"
	"io"
)

// WriteInOrder writes "N-<node> T-<primitive> " for every leaf, left to right
func (bvh *BVH[P]) WriteInOrder(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bvh.InOrder(func(id int, node BVHNode) {
		if node.IsLeaf() {
			fmt.Fprintf(bw, "N-%d T-%d ", id, node.Primitive)
		}
	})
	return bw.Flush()
}

// WriteBoxes writes one line per node in breadth-first order:
// "T-<primitive or -1> N-<node> [minx miny minz] [maxx maxy maxz]"
func (bvh *BVH[P]) WriteBoxes(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bvh.BreadthFirst(func(id int, node BVHNode) {
		fmt.Fprintf(bw, "T-%d N-%d [%.6f %.6f %.6f] [%.6f %.6f %.6f]\n",
			node.Primitive, id,
			node.Box.Min.X, node.Box.Min.Y, node.Box.Min.Z,
			node.Box.Max.X, node.Box.Max.Y, node.Box.Max.Z,
		)
	})
	return bw.Flush()
}
