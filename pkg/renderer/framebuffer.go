package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a width x height grid of linear float colors, row-major,
// with (0,0) at the top left
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.RGBA
}

// NewFramebuffer creates a framebuffer cleared to transparent
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.RGBA, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.RGBA {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.RGBA) {
	fb.Pixels[j*fb.Width+i] = c
}

// Image converts the framebuffer to 8-bit color, clamping every channel to [0,1]
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			img.SetNRGBA(i, j, color.NRGBA{
				R: toByte(c.R),
				G: toByte(c.G),
				B: toByte(c.B),
				A: toByte(c.A),
			})
		}
	}
	return img
}

// toByte clamps v to [0,1] and scales it to [0,255]; NaN maps to 0
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// SavePNG encodes the framebuffer as a PNG file
func (fb *Framebuffer) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, fb.Image()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return file.Close()
}
