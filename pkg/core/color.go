package core

// RGBA is a linear floating point color with alpha
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the zero color returned for rays that escape the scene
var Transparent = RGBA{}

// NewRGBA creates an RGBA from a color vector and alpha
func NewRGBA(color Vec3, alpha float64) RGBA {
	return RGBA{R: color.X, G: color.Y, B: color.Z, A: alpha}
}

// Opaque returns the color vector with alpha 1
func Opaque(color Vec3) RGBA {
	return NewRGBA(color, 1)
}

// RGB returns the color channels as a vector
func (c RGBA) RGB() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}
