package geometry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func dumpTriangles() []Triangle {
	return []Triangle{
		NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
		NewTriangle(core.NewVec3(2, 0, 0), core.NewVec3(3, 0, 0), core.NewVec3(2, 1, 0)),
		NewTriangle(core.NewVec3(4, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(4, 1, 1)),
	}
}

func TestBVH_WriteInOrder(t *testing.T) {
	bvh := MustNewBVH(dumpTriangles(), SplitInsertionOrder)

	var buf bytes.Buffer
	if err := bvh.WriteInOrder(&buf); err != nil {
		t.Fatalf("WriteInOrder failed: %v", err)
	}

	// Root 0 splits [0] | [1 2]; nodes are numbered in build order
	expected := "N-1 T-0 N-3 T-1 N-4 T-2 "
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestBVH_WriteBoxes(t *testing.T) {
	bvh := MustNewBVH(dumpTriangles(), SplitInsertionOrder)

	var buf bytes.Buffer
	if err := bvh.WriteBoxes(&buf); err != nil {
		t.Fatalf("WriteBoxes failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d: %q", len(lines), buf.String())
	}

	expectedFirst := "T--1 N-0 [0.000000 0.000000 0.000000] [5.000000 1.000000 1.000000]"
	if lines[0] != expectedFirst {
		t.Errorf("Expected root line %q, got %q", expectedFirst, lines[0])
	}
	if !strings.HasPrefix(lines[1], "T-0 N-1 ") || !strings.HasPrefix(lines[2], "T--1 N-2 ") {
		t.Errorf("Expected breadth-first order, got %q and %q", lines[1], lines[2])
	}
}
