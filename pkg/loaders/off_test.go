package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tetrahedronOFF = `OFF
# regular tetrahedron
4 4 6
0 0 0
1 0 0
0 1 0
0 0 1

3 0 2 1
3 0 1 3
3 0 3 2
3 1 2 3
`

func TestReadOFF(t *testing.T) {
	data, err := ReadOFF(strings.NewReader(tetrahedronOFF))
	if err != nil {
		t.Fatalf("ReadOFF failed: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if len(data.Faces) != 12 {
		t.Errorf("Expected 12 indices, got %d", len(data.Faces))
	}
	if data.Vertices[3] != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected vertex 3 at (0,0,1), got %v", data.Vertices[3])
	}
	if data.Faces[9] != 1 || data.Faces[10] != 2 || data.Faces[11] != 3 {
		t.Errorf("Expected last face (1,2,3), got %v", data.Faces[9:])
	}
}

func TestReadOFF_CountsOnHeaderLineAndQuads(t *testing.T) {
	input := "OFF 4 1 0\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n4 0 1 2 3\n"

	data, err := ReadOFF(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadOFF failed: %v", err)
	}
	checkSquare(t, data.Vertices, data.Faces)
}

func TestReadOFF_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "PLY\n1 0 0\n"},
		{"missing counts", "OFF\n"},
		{"bad counts", "OFF\nfour 1 0\n"},
		{"short vertex", "OFF\n1 0 0\n0 0\n"},
		{"bad coordinate", "OFF\n1 0 0\n0 x 0\n"},
		{"truncated vertices", "OFF\n3 0 0\n0 0 0\n"},
		{"index out of range", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 3\n"},
		{"short face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1\n"},
		{"huge vertex count", "OFF\n99999999999999999 0 0\n"},
		{"huge face count", "OFF\n0 9999999999999999 0\n"},
		{"face count overflows", "OFF\n3 4611686018427387904 0\n0 0 0\n1 0 0\n0 1 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadOFF(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()

	offPath := filepath.Join(dir, "tetra.off")
	if err := os.WriteFile(offPath, []byte(tetrahedronOFF), 0644); err != nil {
		t.Fatalf("Failed to write OFF fixture: %v", err)
	}

	triangles, err := LoadMesh(offPath)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if len(triangles) != 4 {
		t.Fatalf("Expected 4 triangles, got %d", len(triangles))
	}
	if triangles[0].P2 != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected first triangle P2 at (0,1,0), got %v", triangles[0].P2)
	}

	_, err = LoadMesh(filepath.Join(dir, "model.obj"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
