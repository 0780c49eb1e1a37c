package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"gonum.org/v1/gonum/mat"
)

func TestTriangle_Hit(t *testing.T) {
	// Triangle in the XY plane
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	)

	tests := []struct {
		name           string
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits triangle center",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "Ray hits edge P1-P2",
			ray:            core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "Ray on edge P2-P3 belongs to neither side",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:           "Ray hits from behind",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:           "Unnormalized direction scales t",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 2)),
			shouldHit:      true,
			expectedT:      0.5,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, core.DefaultEpsilon)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if tt.ray.At(hit.T).Subtract(hit.Point).Length() > 1e-9 {
				t.Errorf("Hit point %v is not on the ray", hit.Point)
			}
		})
	}
}

func TestTriangle_EpsilonRejectsSelfHit(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))

	// Ray starting on the surface
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.3, 1).Normalize())
	if _, ok := triangle.Hit(ray, core.DefaultEpsilon); ok {
		t.Error("Ray leaving the surface should not hit its own triangle")
	}

	// A larger epsilon also rejects hits just in front of the origin
	ray = core.NewRay(core.NewVec3(0, 0, -0.01), core.NewVec3(0, 0, 1))
	if _, ok := triangle.Hit(ray, 0.1); ok {
		t.Error("Hit at t=0.01 should be rejected with epsilon 0.1")
	}
	if _, ok := triangle.Hit(ray, core.DefaultEpsilon); !ok {
		t.Error("Hit at t=0.01 should be accepted with the default epsilon")
	}
}

func TestTriangle_ParallelRayNeverHits(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	triangle := NewTriangle(
		core.NewVec3(0.3, -1.2, 0.7),
		core.NewVec3(2.1, 0.4, -0.5),
		core.NewVec3(-0.8, 1.5, 1.1),
	)
	edge1 := triangle.P2.Subtract(triangle.P1)
	edge2 := triangle.P3.Subtract(triangle.P1)

	for i := 0; i < 500; i++ {
		// Direction inside the triangle plane
		dir := edge1.Multiply(random.Float64()*2 - 1).Add(edge2.Multiply(random.Float64()*2 - 1))
		origin := core.NewVec3(random.Float64()*6-3, random.Float64()*6-3, random.Float64()*6-3)

		if hit, ok := triangle.Hit(core.NewRay(origin, dir), core.DefaultEpsilon); ok {
			t.Fatalf("Parallel ray from %v along %v reported a hit at t=%f", origin, dir, hit.T)
		}
	}
}

func TestTriangle_DegenerateNeverHits(t *testing.T) {
	// Collinear vertices have zero area
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2))

	ray := core.NewRay(core.NewVec3(1, 1, -5), core.NewVec3(0, 0, 1))
	if _, ok := triangle.Hit(ray, core.DefaultEpsilon); ok {
		t.Error("Degenerate triangle should never report a hit")
	}
	if triangle.Normal() != (core.Vec3{}) {
		t.Errorf("Expected zero normal for degenerate triangle, got %v", triangle.Normal())
	}
}

func TestSolvePlanar_MatchesLUSolve(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	randomVec := func() core.Vec3 {
		return core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2)
	}

	for i := 0; i < 200; i++ {
		p1, p2, p3 := randomVec(), randomVec(), randomVec()
		ray := core.NewRay(randomVec().Multiply(3), randomVec())

		u, v, tParam, ok := solvePlanar(p1, p2, p3, ray)

		a := p1.Subtract(p2)
		b := p1.Subtract(p3)
		c := ray.Direction
		r := p1.Subtract(ray.Origin)
		system := mat.NewDense(3, 3, []float64{
			a.X, b.X, c.X,
			a.Y, b.Y, c.Y,
			a.Z, b.Z, c.Z,
		})
		var x mat.VecDense
		if err := x.SolveVec(system, mat.NewVecDense(3, []float64{r.X, r.Y, r.Z})); err != nil {
			// Ill-conditioned sample, both solvers may legitimately disagree
			continue
		}
		if !ok {
			t.Fatalf("Cramer solver reported singular where LU succeeded (sample %d)", i)
		}

		close := func(got, want float64) bool {
			return math.Abs(got-want) <= 1e-6*(1+math.Abs(want))
		}
		if !close(u, x.AtVec(0)) || !close(v, x.AtVec(1)) || !close(tParam, x.AtVec(2)) {
			t.Errorf("Sample %d: cramer (%f, %f, %f) vs LU (%f, %f, %f)", i, u, v, tParam, x.AtVec(0), x.AtVec(1), x.AtVec(2))
		}
	}
}

func TestTriangle_BoundingBoxAndCentroid(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 3, 0))

	bbox := triangle.BoundingBox()
	if bbox.Min != core.NewVec3(0, 0, 0) || bbox.Max != core.NewVec3(2, 3, 0) {
		t.Errorf("Unexpected bounding box %v", bbox)
	}

	centroid := triangle.Centroid()
	if centroid.Subtract(core.NewVec3(1, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected centroid (1,1,0), got %v", centroid)
	}
}
