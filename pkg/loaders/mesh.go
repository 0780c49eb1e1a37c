package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ErrUnsupportedFormat is returned for mesh files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// maxPrealloc caps slice capacity taken from counts in a file header. Larger
// meshes grow by append; truncated files then fail on read instead of allocation.
const maxPrealloc = 1 << 16

func preallocCount(count int) int {
	return min(count, maxPrealloc)
}

// LoadMesh loads an .off or .ply file into triangles, in face order
func LoadMesh(filename string) ([]geometry.Triangle, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".off":
		data, err := LoadOFF(filename)
		if err != nil {
			return nil, err
		}
		return Triangulate(data.Vertices, data.Faces), nil
	case ".ply":
		data, err := LoadPLY(filename)
		if err != nil {
			return nil, err
		}
		return Triangulate(data.Vertices, data.Faces), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// Triangulate builds triangles from vertices and triangle indices (3 per triangle).
// Indices must already be in range.
func Triangulate(vertices []core.Vec3, faces []int) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(faces)/3)
	for i := 0; i+2 < len(faces); i += 3 {
		triangles = append(triangles, geometry.NewTriangle(
			vertices[faces[i]],
			vertices[faces[i+1]],
			vertices[faces[i+2]],
		))
	}
	return triangles
}
