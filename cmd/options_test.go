package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// fakeFlags is a flagValues backed by maps; a key present in any map is set
type fakeFlags struct {
	strings map[string]string
	ints    map[string]int
	floats  map[string]float64
	bools   map[string]bool
}

func (f fakeFlags) String(name string) string   { return f.strings[name] }
func (f fakeFlags) Int(name string) int         { return f.ints[name] }
func (f fakeFlags) Float64(name string) float64 { return f.floats[name] }
func (f fakeFlags) Bool(name string) bool       { return f.bools[name] }

func (f fakeFlags) IsSet(name string) bool {
	_, s := f.strings[name]
	_, i := f.ints[name]
	_, fl := f.floats[name]
	_, b := f.bools[name]
	return s || i || fl || b
}

func TestCreateScene(t *testing.T) {
	sc, err := createScene(fakeFlags{
		strings: map[string]string{"scene": "cornell", "projection": "orthographic"},
		ints:    map[string]int{"width": 16, "height": 12, "bounces": 2},
	})
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}

	cam := sc.Camera.Config()
	if cam.Width != 16 || cam.Height != 12 {
		t.Errorf("Expected 16x12 camera, got %dx%d", cam.Width, cam.Height)
	}
	if cam.Projection != geometry.Orthographic {
		t.Errorf("Expected orthographic projection, got %s", cam.Projection)
	}
	if sc.Bounces != 2 {
		t.Errorf("Expected 2 bounces, got %d", sc.Bounces)
	}
}

func TestCreateScene_KeepsSceneBounces(t *testing.T) {
	sc, err := createScene(fakeFlags{strings: map[string]string{"scene": "cornell"}})
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	if sc.Bounces != 3 {
		t.Errorf("Expected cornell scene bounces 3, got %d", sc.Bounces)
	}
}

func TestCreateScene_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	config := `{
		"camera": {"width": 20, "height": 10},
		"lights": [{"position": [0, 5, 0], "color": [1, 1, 1]}],
		"objects": [{"kind": "sphere", "center": [0, 0, -3], "radius": 1}]
	}`
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	sc, err := createScene(fakeFlags{strings: map[string]string{"scene": "cornell", "config": path}})
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	if len(sc.Objects) != 1 || len(sc.Lights) != 1 {
		t.Errorf("Expected 1 object and 1 light from config, got %d and %d", len(sc.Objects), len(sc.Lights))
	}
	if w := sc.Camera.Width(); w != 20 {
		t.Errorf("Expected width 20 from config, got %d", w)
	}
}

func TestCreateScene_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flags fakeFlags
	}{
		{"unknown scene", fakeFlags{strings: map[string]string{"scene": "nonexistent"}}},
		{"empty scene name", fakeFlags{strings: map[string]string{"scene": ""}}},
		{"bad split", fakeFlags{strings: map[string]string{"scene": "default", "split": "sah"}}},
		{"bad projection", fakeFlags{strings: map[string]string{"scene": "default", "projection": "fisheye"}}},
		{"negative bounces", fakeFlags{strings: map[string]string{"scene": "default"}, ints: map[string]int{"bounces": -1}}},
		{"negative width", fakeFlags{strings: map[string]string{"scene": "default"}, ints: map[string]int{"width": -4}}},
		{"missing config", fakeFlags{strings: map[string]string{"config": "does/not/exist.json"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.flags)
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if sc != nil {
				t.Errorf("Expected nil scene on error, got %v", sc)
			}
		})
	}
}

func TestCreateScene_UnknownSceneError(t *testing.T) {
	_, err := createScene(fakeFlags{strings: map[string]string{"scene": "nonexistent"}})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestIntegratorConfig(t *testing.T) {
	config, err := integratorConfig(fakeFlags{})
	if err != nil {
		t.Fatalf("integratorConfig failed: %v", err)
	}
	if config != integrator.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", config)
	}

	config, err = integratorConfig(fakeFlags{floats: map[string]float64{"epsilon": 0.01, "reflection-offset": 0.02}})
	if err != nil {
		t.Fatalf("integratorConfig failed: %v", err)
	}
	if config.Epsilon != 0.01 || config.ReflectionOffset != 0.02 {
		t.Errorf("Expected epsilon 0.01 and offset 0.02, got %+v", config)
	}

	if _, err = integratorConfig(fakeFlags{floats: map[string]float64{"epsilon": -1}}); err == nil {
		t.Error("Expected error for negative epsilon, got none")
	}
}

func TestParseColumns(t *testing.T) {
	tests := []struct {
		value       string
		expected    renderer.Window
		expectError bool
	}{
		{"", renderer.Window{}, false},
		{"0:100", renderer.ColumnWindow(0, 100), false},
		{"200:400", renderer.ColumnWindow(200, 400), false},
		{"100", renderer.Window{}, true},
		{"a:b", renderer.Window{}, true},
		{"10:10", renderer.Window{}, true},
		{"20:10", renderer.Window{}, true},
		{"-5:10", renderer.Window{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			window, err := parseColumns(tt.value)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if window != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, window)
			}
		})
	}
}
