package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	SetLevel(Notice)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden message")
	logger.Noticef("visible %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "visible 42") {
		t.Errorf("Expected notice message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	SetLevel(Debug)
	buf.Reset()
	logger.Debug("now shown")
	if !strings.Contains(buf.String(), "now shown") {
		t.Errorf("Expected debug message at Debug level, got %q", buf.String())
	}
}

func TestLogger_SetSinkKeepsLevel(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	if Enabled(Notice) {
		t.Error("Notice should stay disabled after changing the sink")
	}
	if !Enabled(Warning) {
		t.Error("Warning should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	for level, name := range levelNames {
		got, err := ParseLevel(name)
		if err != nil || got != level {
			t.Errorf("ParseLevel(%q) = %v, %v; expected %v", name, got, err, level)
		}
		if level.String() != name {
			t.Errorf("Expected %q, got %q", name, level.String())
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
