package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSceneLabel(t *testing.T) {
	tests := []struct {
		name     string
		flags    fakeFlags
		expected string
	}{
		{"built-in scene", fakeFlags{strings: map[string]string{"scene": "cornell"}}, "cornell"},
		{"config file", fakeFlags{strings: map[string]string{"scene": "default", "config": "scenes/room.json"}}, "room"},
		{"nested config", fakeFlags{strings: map[string]string{"config": "a/b/my-scene.json"}}, "my-scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if label := sceneLabel(tt.flags); label != tt.expected {
				t.Errorf("Expected label %q, got %q", tt.expected, label)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	out, err := outputPath("", "cornell", now)
	if err != nil {
		t.Fatalf("outputPath failed: %v", err)
	}
	expected := filepath.Join("output", "cornell", "render_20240305_140709.png")
	if out != expected {
		t.Errorf("Expected %s, got %s", expected, out)
	}
	if info, err := os.Stat(filepath.Join("output", "cornell")); err != nil || !info.IsDir() {
		t.Errorf("Expected output directory to be created, got %v", err)
	}

	out, err = outputPath(filepath.Join("frames", "a.png"), "cornell", now)
	if err != nil {
		t.Fatalf("outputPath failed: %v", err)
	}
	if out != filepath.Join("frames", "a.png") {
		t.Errorf("Expected explicit path to be kept, got %s", out)
	}
	if _, err := os.Stat("frames"); err != nil {
		t.Errorf("Expected parent directory to be created, got %v", err)
	}
}
