package render

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is the bundled bold sans-serif font, relative to the working directory.
const DefaultFontPath = "fonts/OpenSans-Bold.ttf"

// ErrFontTooSmall is returned when the image is too narrow for a font size of
// at least one pixel at the requested size ratio.
var ErrFontTooSmall = errors.New("font size must be at least 1 pixel")

var (
	fallbackOnce sync.Once
	fallback     *opentype.Font
)

// FallbackFont returns the built-in Go Bold font.
func FallbackFont() *opentype.Font {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			panic(fmt.Sprintf("parse built-in font: %v", err))
		}
		fallback = f
	})
	return fallback
}

// LoadFont reads and parses a TrueType/OpenType font file.
func LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// LoadFontOrFallback loads path, substituting FallbackFont with a warning
// when the file is missing or unparseable.
func LoadFontOrFallback(path string, logger *zap.Logger) *opentype.Font {
	f, err := LoadFont(path)
	if err != nil {
		if logger != nil {
			logger.Warn(fmt.Sprintf("Font not found at %s. Using default font.", path),
				zap.String("font", path),
				zap.Error(err),
			)
		}
		return FallbackFont()
	}
	return f
}

// newFace returns a face of size pixels. A nil font uses the fixed 7x13
// bitmap face regardless of size.
func newFace(f *opentype.Font, size int) (font.Face, error) {
	if f == nil {
		return basicfont.Face7x13, nil
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrFontTooSmall, size)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}
