package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Options adjusts how a built-in scene is constructed
type Options struct {
	Camera   geometry.CameraConfig // Non-zero fields override the scene camera
	MeshPath string                // Mesh file for the mesh scene; empty uses a tessellated sphere
	Mesh     geometry.MeshOptions  // Acceleration and transform options for meshes
}

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
}

type registration struct {
	info  SceneInfo
	build Builder
}

var registry = map[string]registration{}

// Register makes a scene available by name. Registering a name twice replaces it.
func Register(name, description string, build Builder) {
	registry[name] = registration{
		info:  SceneInfo{Name: name, Description: description},
		build: build,
	}
}

func init() {
	Register("default", "Spheres over a floor lit by a row of point lights", NewDefaultScene)
	Register("cornell", "Parallelogram box with a mirror sphere and a ceiling light", NewCornellScene)
	Register("mesh", "Triangle mesh (OFF or PLY) accelerated by a BVH", NewMeshScene)
}

// List returns the registered scenes sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, reg := range registry {
		infos = append(infos, reg.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return reg.build(opts)
}

// cameraFor merges scene defaults with caller overrides
func cameraFor(defaults geometry.CameraConfig, opts Options) geometry.CameraConfig {
	return geometry.MergeCameraConfig(defaults, opts.Camera)
}
