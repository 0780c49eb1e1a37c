package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Window limits rendering to columns [MinX, MaxX) and rows [MinY, MaxY).
// A zero bound on the max side means the full image extent.
type Window struct {
	MinX, MaxX int
	MinY, MaxY int
}

// ColumnWindow renders the columns [from, to) over the full height
func ColumnWindow(from, to int) Window {
	return Window{MinX: from, MaxX: to}
}

// clamp fits the window to a width x height image
func (w Window) clamp(width, height int) Window {
	if w.MaxX <= 0 || w.MaxX > width {
		w.MaxX = width
	}
	if w.MaxY <= 0 || w.MaxY > height {
		w.MaxY = height
	}
	w.MinX = max(0, min(w.MinX, w.MaxX))
	w.MinY = max(0, min(w.MinY, w.MaxY))
	return w
}

// Raytracer drives the integrator over every pixel of the scene camera.
// Rendering is single-threaded; pixels outside the window stay transparent.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	window     Window
	logger     log.Logger
}

// NewRaytracer creates a raytracer for the full image
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, logger log.Logger) *Raytracer {
	return &Raytracer{
		scene:      s,
		integrator: integ,
		logger:     logger,
	}
}

// SetWindow restricts rendering to part of the image
func (rt *Raytracer) SetWindow(window Window) {
	rt.window = window
}

// Render shades every pixel in the window, columns outermost
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	camera := rt.scene.Camera
	width, height := camera.Width(), camera.Height()
	fb := NewFramebuffer(width, height)
	window := rt.window.clamp(width, height)

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Bounces: rt.scene.Bounces,
	}

	rt.logger.Infof("rendering %dx%d, columns %d..%d, rows %d..%d, %d bounces",
		width, height, window.MinX, window.MaxX, window.MinY, window.MaxY, rt.scene.Bounces)

	start := time.Now()
	columns := window.MaxX - window.MinX
	nextReport := 10

	luminance := 0.0
	for i := window.MinX; i < window.MaxX; i++ {
		for j := window.MinY; j < window.MaxY; j++ {
			color := rt.integrator.ShootRay(camera.Ray(i, j), rt.scene, rt.scene.Material, rt.scene.Bounces)
			fb.Set(i, j, color)

			stats.PixelsShaded++
			if color != rt.scene.Background {
				stats.PixelsCovered++
			}
			luminance += Luminance(color)
		}

		if done := (i - window.MinX + 1) * 100 / columns; done >= nextReport {
			rt.logger.Debugf("%d%% of columns rendered", done)
			nextReport = done/10*10 + 10
		}
	}

	stats.Duration = time.Since(start)
	if stats.PixelsShaded > 0 {
		stats.AvgLuminance = luminance / float64(stats.PixelsShaded)
	}

	return fb, stats
}
