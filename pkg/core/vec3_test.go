package core

import (
	"math"
	"testing"
)

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotation Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, 0, math.Pi/2),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotation: NewVec3(math.Pi/2, 0, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi, 0),
			expected: NewVec3(-1, 0, 0),
		},
		{
			name:     "Combined rotations",
			vector:   NewVec3(1, 0, 0),
			rotation: NewVec3(0, math.Pi/2, math.Pi/2), // 90° Y then 90° Z
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.rotation)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incident := NewVec3(1, -1, 0)

	reflected := incident.Reflect(normal)
	expected := NewVec3(1, 1, 0)
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}

	// Reflection preserves length
	if math.Abs(reflected.Length()-incident.Length()) > 1e-12 {
		t.Errorf("Reflection changed length: %f -> %f", incident.Length(), reflected.Length())
	}
}

func TestRay_InverseDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(2, 0, math.Copysign(0, -1)))
	inv := ray.InverseDirection()

	if inv.X != 0.5 {
		t.Errorf("Expected 0.5, got %f", inv.X)
	}
	if !math.IsInf(inv.Y, 1) {
		t.Errorf("Expected +Inf for zero component, got %f", inv.Y)
	}
	if !math.IsInf(inv.Z, -1) {
		t.Errorf("Expected -Inf for negative zero component, got %f", inv.Z)
	}
}

func TestNewHitPoint_FacesRay(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	hit := NewHitPoint(ray, 4, NewVec3(0, 0, -1))
	if hit.Normal != NewVec3(0, 0, 1) {
		t.Errorf("Expected normal flipped to (0,0,1), got %v", hit.Normal)
	}
	if hit.Point != NewVec3(0, 0, 1) {
		t.Errorf("Expected point (0,0,1), got %v", hit.Point)
	}
}
