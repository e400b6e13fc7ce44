package style

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a preset file:
//
//	presets:
//	  teal:
//	    color: "#00CED1"
//	    outline: "#003333"
type File struct {
	Presets Presets `yaml:"presets"`
}

// LoadFile reads a YAML preset file and returns the built-in presets with the
// file's entries merged over them. Names are matched case-insensitively.
func LoadFile(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse preset file: %w", err)
	}

	presets := Builtin()
	for name, p := range f.Presets {
		if _, err := ParseColor(p.Color); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if p.Outline != "" {
			if _, err := ParseColor(p.Outline); err != nil {
				return nil, fmt.Errorf("preset %q outline: %w", name, err)
			}
		}
		presets[strings.ToLower(name)] = p
	}
	return presets, nil
}
