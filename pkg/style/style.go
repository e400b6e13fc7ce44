// Package style resolves the fill and outline colours of a stamp from named
// presets and explicit overrides.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// DefaultPreset is used when no preset is named or the named one is unknown.
const DefaultPreset = "orange"

// ErrInvalidColor is returned for colour strings that are neither hex codes nor CSS names.
var ErrInvalidColor = errors.New("invalid color")

// Preset is a named (fill, outline) pair, both given as colour strings.
type Preset struct {
	Color   string `yaml:"color"`
	Outline string `yaml:"outline"`
}

// Presets maps lower-case preset names to colour pairs.
type Presets map[string]Preset

// Builtin returns a fresh copy of the built-in preset table.
func Builtin() Presets {
	return Presets{
		"orange": {Color: "#FFA500", Outline: "#000000"},
		"yellow": {Color: "#FFFF00", Outline: "#000000"},
		"purple": {Color: "#E0B0FF", Outline: "#4D0082"},
		"green":  {Color: "#B0FFB0", Outline: "#005000"},
		"blue":   {Color: "#B0E0FF", Outline: "#000082"},
		"white":  {Color: "#FFFFFF", Outline: "#000000"},
		"black":  {Color: "#000000", Outline: "#FFFFFF"},
	}
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors is the resolved colour pair. Outline is nil when no outline pass is drawn.
type Colors struct {
	Fill    color.Color
	Outline color.Color
}

// Request holds the user's colour choices before resolution.
type Request struct {
	Preset  string
	Color   string
	Outline string
}

// Resolve applies colour precedence: an explicit fill colour bypasses the
// preset table entirely; otherwise the named preset (or DefaultPreset, with a
// warning, when the name is unknown) supplies both colours. An explicit
// outline always wins.
func Resolve(presets Presets, req Request, logger *zap.Logger) (Colors, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if presets == nil {
		presets = Builtin()
	}

	fill, outline := req.Color, req.Outline
	if fill == "" {
		name := strings.ToLower(strings.TrimSpace(req.Preset))
		if name == "" {
			name = DefaultPreset
		}
		p, ok := presets[name]
		if !ok {
			logger.Warn(fmt.Sprintf("Color preset '%s' not found. Using default.", req.Preset),
				zap.String("preset", req.Preset),
				zap.String("default", DefaultPreset),
			)
			p, ok = presets[DefaultPreset]
			if !ok {
				p = Builtin()[DefaultPreset]
			}
		}
		fill = p.Color
		if outline == "" {
			outline = p.Outline
		}
	}

	var colors Colors
	c, err := ParseColor(fill)
	if err != nil {
		return Colors{}, fmt.Errorf("fill: %w", err)
	}
	colors.Fill = c

	if outline != "" {
		c, err := ParseColor(outline)
		if err != nil {
			return Colors{}, fmt.Errorf("outline: %w", err)
		}
		colors.Outline = c
	}
	return colors, nil
}

// ParseColor accepts #RGB, #RGBA, #RRGGBB, #RRGGBBAA and CSS colour names.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
