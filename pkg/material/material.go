package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds Blinn-Phong reflectance coefficients. It is a plain value
// with no identity; copies are interchangeable.
type Material struct {
	Ambient    core.Vec3 // Multiplied with the scene ambient color
	Diffuse    core.Vec3 // Lambertian term coefficient
	Specular   core.Vec3 // Highlight coefficient
	Shininess  float64   // Specular exponent
	Reflection core.Vec3 // Weight applied to the mirror-reflected color
}

// NewMaterial creates a material from its coefficients
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64, reflection core.Vec3) Material {
	return Material{
		Ambient:    ambient,
		Diffuse:    diffuse,
		Specular:   specular,
		Shininess:  shininess,
		Reflection: reflection,
	}
}

// Default is a dull red, fairly reflective surface
func Default() Material {
	return NewMaterial(
		core.NewVec3(0.5, 0.1, 0.1),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(0.2, 0.2, 0.2),
		256,
		core.NewVec3(0.7, 0.7, 0.7),
	)
}

// Matte returns a non-reflective diffuse material of the given color
func Matte(color core.Vec3) Material {
	return NewMaterial(color.Multiply(0.1), color, core.Vec3{}, 1, core.Vec3{})
}

// Mirror returns a material that mostly reflects, with a tight highlight
func Mirror(tint core.Vec3) Material {
	return NewMaterial(core.Vec3{}, tint.Multiply(0.05), core.NewVec3(0.5, 0.5, 0.5), 512, tint)
}

// IsReflective reports whether any reflection channel is non-zero
func (m Material) IsReflective() bool {
	return m.Reflection.X != 0 || m.Reflection.Y != 0 || m.Reflection.Z != 0
}

// BlinnPhong evaluates the unattenuated diffuse plus specular response for a
// unit normal, a unit direction toward the light and the incoming ray direction.
//
//	diffuse  = max(0, N·L) · Diffuse
//	specular = max(0, N·H)^Shininess · Specular,  H = normalize(L - rayDirection)
func (m Material) BlinnPhong(normal, toLight, rayDirection core.Vec3) core.Vec3 {
	diffuse := m.Diffuse.Multiply(math.Max(0, normal.Dot(toLight)))

	halfway := toLight.Subtract(rayDirection).Normalize()
	specular := m.Specular.Multiply(math.Pow(math.Max(0, normal.Dot(halfway)), m.Shininess))

	return diffuse.Add(specular)
}
