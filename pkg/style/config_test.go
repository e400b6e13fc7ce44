package style

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MergesOverBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := []byte(`presets:
  Teal:
    color: "#00CED1"
    outline: "#003333"
  orange:
    color: "#FF8800"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	presets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := presets["teal"]; got != (Preset{Color: "#00CED1", Outline: "#003333"}) {
		t.Fatalf("unexpected teal preset: %#v", got)
	}
	if got := presets["orange"]; got != (Preset{Color: "#FF8800"}) {
		t.Fatalf("unexpected orange preset: %#v", got)
	}
	if _, ok := presets["black"]; !ok {
		t.Fatalf("expected builtin presets to be kept")
	}
}

func TestLoadFile_RejectsInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("presets:\n  bad:\n    color: nope\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
