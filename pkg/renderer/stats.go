package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int           // Framebuffer width
	Height        int           // Framebuffer height
	PixelsShaded  int           // Pixels inside the render window
	PixelsCovered int           // Shaded pixels whose color differs from the background
	Bounces       int           // Reflection budget per primary ray
	Duration      time.Duration // Wall time of the render loop
	AvgLuminance  float64       // Mean luminance over shaded pixels
}

// PixelsPerSecond returns the shading throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PixelsShaded) / s.Duration.Seconds()
}

// Coverage returns the fraction of shaded pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.PixelsShaded == 0 {
		return 0
	}
	return float64(s.PixelsCovered) / float64(s.PixelsShaded)
}

// Luminance returns the Rec. 709 luminance of a color
func Luminance(c core.RGBA) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
