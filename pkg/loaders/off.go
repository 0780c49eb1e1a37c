package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// OFFData contains the geometry loaded from an OFF file
type OFFData struct {
	Vertices []core.Vec3
	Faces    []int // Triangle indices (3 per triangle), polygons fan-triangulated
}

// LoadOFF loads an Object File Format mesh
func LoadOFF(filename string) (*OFFData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OFF file: %w", err)
	}
	defer file.Close()

	data, err := ReadOFF(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ReadOFF parses OFF data: an "OFF" header, a "vertices faces edges" counts
// line, one "x y z" line per vertex and one "n i0 i1 ... in-1" line per face.
// Blank lines and # comments are ignored.
func ReadOFF(r io.Reader) (*OFFData, error) {
	lines := &offLines{scanner: bufio.NewScanner(r)}

	fields, err := lines.next()
	if err != nil {
		return nil, fmt.Errorf("missing OFF header: %w", err)
	}
	if !strings.HasPrefix(fields[0], "OFF") {
		return nil, fmt.Errorf("line %d: expected OFF header, got %q", lines.number, fields[0])
	}

	// Counts may share the header line
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, err = lines.next(); err != nil {
			return nil, fmt.Errorf("missing counts line: %w", err)
		}
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("line %d: expected vertex and face counts", lines.number)
	}
	numVertices, err1 := strconv.Atoi(counts[0])
	numFaces, err2 := strconv.Atoi(counts[1])
	if err1 != nil || err2 != nil || numVertices < 0 || numFaces < 0 {
		return nil, fmt.Errorf("line %d: invalid counts %q", lines.number, strings.Join(counts, " "))
	}

	data := &OFFData{
		Vertices: make([]core.Vec3, 0, preallocCount(numVertices)),
		Faces:    make([]int, 0, preallocCount(numFaces)*3),
	}

	for i := 0; i < numVertices; i++ {
		fields, err := lines.next()
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lines.number)
		}
		var xyz [3]float64
		for axis := range xyz {
			if xyz[axis], err = strconv.ParseFloat(fields[axis], 64); err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", lines.number, fields[axis])
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(xyz[0], xyz[1], xyz[2]))
	}

	for i := 0; i < numFaces; i++ {
		fields, err := lines.next()
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 3 || len(fields) < n+1 {
			return nil, fmt.Errorf("line %d: invalid face %q", lines.number, strings.Join(fields, " "))
		}

		polygon := make([]int, n)
		for k := range polygon {
			idx, err := strconv.Atoi(fields[k+1])
			if err != nil || idx < 0 || idx >= numVertices {
				return nil, fmt.Errorf("line %d: invalid vertex index %q", lines.number, fields[k+1])
			}
			polygon[k] = idx
		}
		data.Faces = appendFan(data.Faces, polygon)
	}

	return data, nil
}

// offLines yields the fields of each non-empty, non-comment line
type offLines struct {
	scanner *bufio.Scanner
	number  int
}

func (l *offLines) next() ([]string, error) {
	for l.scanner.Scan() {
		l.number++
		line := l.scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := l.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}
