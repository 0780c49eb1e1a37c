package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Projection selects how the camera maps pixels to rays
type Projection int

const (
	// Perspective rays start at the camera position and pass through the pixel centre
	Perspective Projection = iota
	// Orthographic rays start on the image plane and all point down -Z
	Orthographic
)

// String returns the flag name of the projection
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// ParseProjection converts a flag or config value into a Projection
func ParseProjection(name string) (Projection, error) {
	switch name {
	case "", "perspective":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return 0, fmt.Errorf("unknown projection %q (expected perspective or orthographic)", name)
	}
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position    core.Vec3  // Camera position; the camera looks down -Z
	FOV         float64    // Vertical field of view in radians
	FocalLength float64    // Distance from the position to the image plane
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	Projection  Projection // Perspective or orthographic
}

// DefaultCameraConfig returns a 640x480 perspective camera at (0,0,2)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, 2),
		FOV:         math.Pi / 4,
		FocalLength: 2.0,
		Width:       640,
		Height:      480,
		Projection:  Perspective,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Projection != Perspective {
		result.Projection = override.Projection
	}
	return result
}

// Camera maps pixel indices to primary rays. The image plane sits FocalLength
// in front of the camera; pixel (0,0) is its top-left corner.
type Camera struct {
	config       CameraConfig
	screenOrigin core.Vec3 // Top-left corner of the image plane
	xStep        core.Vec3 // One pixel to the right
	yStep        core.Vec3 // One pixel down
}

// NewCamera creates a camera from config. Width and height must be positive.
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)
	imageY := 2 * math.Tan(config.FOV/2) * config.FocalLength
	imageX := imageY * aspectRatio

	return &Camera{
		config:       config,
		screenOrigin: config.Position.Add(core.NewVec3(-imageX, imageY, -config.FocalLength)),
		xStep:        core.NewVec3(2*imageX/float64(config.Width), 0, 0),
		yStep:        core.NewVec3(0, -2*imageY/float64(config.Height), 0),
	}
}

// Ray returns the primary ray through the centre of pixel (i, j)
func (c *Camera) Ray(i, j int) core.Ray {
	screenPoint := c.screenOrigin.
		Add(c.xStep.Multiply(float64(i) + 0.5)).
		Add(c.yStep.Multiply(float64(j) + 0.5))

	if c.config.Projection == Orthographic {
		origin := core.NewVec3(screenPoint.X, screenPoint.Y, c.config.Position.Z)
		return core.NewRay(origin, core.NewVec3(0, 0, -1))
	}

	return core.NewRay(c.config.Position, screenPoint.Subtract(c.config.Position).Normalize())
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}
