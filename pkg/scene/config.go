package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

// Vec3 converts the triple to a core.Vec3
func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraCfg struct {
	Position    *Vec3Cfg `json:"position,omitempty"`
	FOVDeg      float64  `json:"fovDeg,omitempty"`
	FocalLength float64  `json:"focalLength,omitempty"`
	Width       int      `json:"width,omitempty"`
	Height      int      `json:"height,omitempty"`
	Projection  string   `json:"projection,omitempty"` // "perspective" or "orthographic"
}

type MaterialCfg struct {
	Ambient    Vec3Cfg `json:"ambient"`
	Diffuse    Vec3Cfg `json:"diffuse"`
	Specular   Vec3Cfg `json:"specular"`
	Shininess  float64 `json:"shininess"`
	Reflection Vec3Cfg `json:"reflection"`
}

type LightCfg struct {
	Position  Vec3Cfg `json:"position"`
	Color     Vec3Cfg `json:"color"`
	Intensity float64 `json:"intensity,omitempty"` // defaults 1
}

// ObjectCfg describes one scene object. Kind selects which fields apply.
type ObjectCfg struct {
	Kind     string       `json:"kind"` // sphere, triangle, plane, parallelogram, mesh
	Name     string       `json:"name,omitempty"`
	Material *MaterialCfg `json:"material,omitempty"`

	// sphere; for a mesh, the rotation pivot
	Center Vec3Cfg `json:"center"`
	Radius float64 `json:"radius"`

	// triangle, parallelogram (corner then its two neighbours)
	Points []Vec3Cfg `json:"points,omitempty"`

	// plane
	Point  Vec3Cfg `json:"point"`
	Normal Vec3Cfg `json:"normal"`

	// mesh
	Path        string   `json:"path,omitempty"` // Relative to the config file
	RotationDeg *Vec3Cfg `json:"rotationDeg,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Translate   *Vec3Cfg `json:"translate,omitempty"`
	Split       string   `json:"split,omitempty"`
	BruteForce  *bool    `json:"bruteForce,omitempty"`
}

// Config is a JSON scene description
type Config struct {
	Camera     CameraCfg    `json:"camera"`
	Ambient    Vec3Cfg      `json:"ambient"`
	Background *[4]float64  `json:"background,omitempty"` // RGBA, defaults transparent
	Bounces    *int         `json:"bounces,omitempty"`
	Material   *MaterialCfg `json:"material,omitempty"` // Default material, defaults to material.Default()
	Lights     []LightCfg   `json:"lights"`
	Objects    []ObjectCfg  `json:"objects"`

	dir string // Directory mesh paths are resolved against
}

// LoadConfig reads a JSON scene description. Unknown fields are errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes a JSON scene description
func ParseConfig(data []byte) (*Config, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &cfg, nil
}

// Material builds the runtime material
func (m MaterialCfg) Material() material.Material {
	return material.NewMaterial(m.Ambient.Vec3(), m.Diffuse.Vec3(), m.Specular.Vec3(), m.Shininess, m.Reflection.Vec3())
}

// CameraConfig applies the configured fields over the default camera
func (c CameraCfg) CameraConfig() (geometry.CameraConfig, error) {
	projection, err := geometry.ParseProjection(c.Projection)
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	if c.Width < 0 || c.Height < 0 {
		return geometry.CameraConfig{}, fmt.Errorf("camera size must be positive, got %dx%d", c.Width, c.Height)
	}

	override := geometry.CameraConfig{
		FOV:         c.FOVDeg * math.Pi / 180,
		FocalLength: c.FocalLength,
		Width:       c.Width,
		Height:      c.Height,
		Projection:  projection,
	}
	if c.Position != nil {
		override.Position = c.Position.Vec3()
	}
	return geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), override), nil
}

// Build constructs the described scene. Non-zero camera fields in opts
// override the file, and opts.Mesh supplies mesh defaults.
func (c *Config) Build(opts Options) (*Scene, error) {
	cameraConfig, err := c.Camera.CameraConfig()
	if err != nil {
		return nil, err
	}

	s := NewScene(geometry.MergeCameraConfig(cameraConfig, opts.Camera))
	s.Ambient = c.Ambient.Vec3()
	if c.Background != nil {
		bg := *c.Background
		s.Background = core.RGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]}
	}
	if c.Bounces != nil {
		if *c.Bounces < 0 {
			return nil, fmt.Errorf("bounces must be >= 0, got %d", *c.Bounces)
		}
		s.Bounces = *c.Bounces
	}
	if c.Material != nil {
		s.Material = c.Material.Material()
	}

	for _, lc := range c.Lights {
		light := lights.NewPointLight(lc.Position.Vec3(), lc.Color.Vec3())
		if lc.Intensity != 0 {
			light.Intensity = lc.Intensity
		}
		s.Lights = append(s.Lights, light)
	}

	for i, oc := range c.Objects {
		shape, err := c.buildShape(oc, opts)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, oc.Kind, err)
		}

		name := oc.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", oc.Kind, i)
		}
		if oc.Material != nil {
			s.AddWithMaterial(name, shape, oc.Material.Material())
		} else {
			s.Add(name, shape)
		}
	}

	return s, nil
}

func (c *Config) buildShape(oc ObjectCfg, opts Options) (geometry.Shape, error) {
	switch oc.Kind {
	case "sphere":
		if oc.Radius <= 0 {
			return nil, fmt.Errorf("radius must be > 0, got %g", oc.Radius)
		}
		return geometry.NewSphere(oc.Center.Vec3(), oc.Radius), nil
	case "triangle":
		if len(oc.Points) != 3 {
			return nil, fmt.Errorf("need 3 points, got %d", len(oc.Points))
		}
		return geometry.NewTriangle(oc.Points[0].Vec3(), oc.Points[1].Vec3(), oc.Points[2].Vec3()), nil
	case "parallelogram":
		if len(oc.Points) != 3 {
			return nil, fmt.Errorf("need 3 points, got %d", len(oc.Points))
		}
		return geometry.NewParallelogram(oc.Points[0].Vec3(), oc.Points[1].Vec3(), oc.Points[2].Vec3()), nil
	case "plane":
		if oc.Normal.Vec3().LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(oc.Point.Vec3(), oc.Normal.Vec3()), nil
	case "mesh":
		return c.buildMesh(oc, opts)
	default:
		return nil, fmt.Errorf("unknown object kind %q", oc.Kind)
	}
}

func (c *Config) buildMesh(oc ObjectCfg, opts Options) (geometry.Shape, error) {
	if oc.Path == "" {
		return nil, fmt.Errorf("mesh path is required")
	}

	path := oc.Path
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}

	triangles, err := loaders.LoadMesh(path)
	if err != nil {
		return nil, err
	}

	meshOpts := opts.Mesh
	if oc.Split != "" {
		if meshOpts.Split, err = geometry.ParseSplitPolicy(oc.Split); err != nil {
			return nil, err
		}
	}
	if oc.BruteForce != nil {
		meshOpts.BruteForce = *oc.BruteForce
	}
	if oc.RotationDeg != nil {
		rotation := oc.RotationDeg.Vec3().Multiply(math.Pi / 180)
		center := oc.Center.Vec3()
		meshOpts.Rotation = &rotation
		meshOpts.Center = &center
	}
	if oc.Scale != 0 {
		meshOpts.Scale = oc.Scale
	}
	if oc.Translate != nil {
		translate := oc.Translate.Vec3()
		meshOpts.Translate = &translate
	}

	mesh, err := geometry.NewMesh(triangles, &meshOpts)
	if err != nil {
		return nil, err
	}
	return mesh, nil
}
