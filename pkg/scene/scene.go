package scene

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Object is a shape placed in the scene. A nil Material uses the material
// passed to the integrator.
type Object struct {
	Name     string
	Shape    geometry.Shape
	Material *material.Material
}

// Scene contains all the elements needed for rendering. It is built once and
// only read while rendering.
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Objects      []Object       // Tested linearly; meshes carry their own BVH
	Lights       []lights.Light // Lights in the scene
	Ambient      core.Vec3      // Ambient light color
	Background   core.RGBA      // Returned for rays that hit nothing
	Material     material.Material
	Bounces      int // Reflection bounce budget for primary rays
}

// NewScene creates an empty scene with the given camera
func NewScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Objects:      make([]Object, 0),
		Lights:       make([]lights.Light, 0),
		Background:   core.Transparent,
		Material:     material.Default(),
		Bounces:      5,
	}
}

// SetCamera replaces the camera configuration and rebuilds the camera
func (s *Scene) SetCamera(config geometry.CameraConfig) {
	s.CameraConfig = config
	s.Camera = geometry.NewCamera(config)
}

// Add places a shape in the scene using the default material
func (s *Scene) Add(name string, shape geometry.Shape) {
	s.Objects = append(s.Objects, Object{Name: name, Shape: shape})
}

// AddWithMaterial places a shape with its own material
func (s *Scene) AddWithMaterial(name string, shape geometry.Shape, mat material.Material) {
	s.Objects = append(s.Objects, Object{Name: name, Shape: shape, Material: &mat})
}

// AddPointLight adds a point light with intensity 1
func (s *Scene) AddPointLight(position, color core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color))
}

// NearestHit tests every object and returns the closest hit. Ties keep the
// object added first.
func (s *Scene) NearestHit(ray core.Ray, epsilon float64) (core.HitPoint, *Object, bool) {
	var closest core.HitPoint
	var closestObject *Object

	for i := range s.Objects {
		hit, ok := s.Objects[i].Shape.Hit(ray, epsilon)
		if !ok {
			continue
		}
		if closestObject == nil || hit.T < closest.T {
			closest = hit
			closestObject = &s.Objects[i]
		}
	}

	return closest, closestObject, closestObject != nil
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, obj := range s.Objects {
		count += countPrimitivesInShape(obj.Shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling meshes
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Mesh:
		return obj.TriangleCount()
	default:
		return 1
	}
}

// Meshes returns every mesh object in the scene
func (s *Scene) Meshes() []*geometry.Mesh {
	var meshes []*geometry.Mesh
	for _, obj := range s.Objects {
		if mesh, ok := obj.Shape.(*geometry.Mesh); ok {
			meshes = append(meshes, mesh)
		}
	}
	return meshes
}
