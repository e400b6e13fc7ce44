package render

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrUnknownPlacement is returned for placement names outside the four corners.
var ErrUnknownPlacement = errors.New("unknown position")

// Placement is the image corner the stamp is anchored to.
type Placement string

const (
	BottomRight Placement = "bottom-right"
	BottomLeft  Placement = "bottom-left"
	TopRight    Placement = "top-right"
	TopLeft     Placement = "top-left"
)

// Placements lists the supported corners in display order.
func Placements() []Placement {
	return []Placement{BottomRight, BottomLeft, TopRight, TopLeft}
}

// ParsePlacement maps a case-insensitive corner name to a Placement.
func ParsePlacement(name string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case BottomRight, BottomLeft, TopRight, TopLeft:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlacement, name)
}

// Horizontal is the edge of the text aligned to the anchor x.
type Horizontal byte

const (
	Left  Horizontal = 'l'
	Right Horizontal = 'r'
)

// Vertical is the text row aligned to the anchor y.
type Vertical byte

const (
	Ascender Vertical = 'a'
	Baseline Vertical = 's'
)

// Anchor says which point of the rendered text sits on the anchor point.
type Anchor struct {
	Horizontal Horizontal
	Vertical   Vertical
}

// String returns the two-letter anchor code, e.g. "rs" for right-baseline.
func (a Anchor) String() string {
	return string([]byte{byte(a.Horizontal), byte(a.Vertical)})
}

// Metrics are the resolution-dependent sizes of a stamp, in pixels.
type Metrics struct {
	FontSize int
	Stroke   int
	Padding  int
}

// Compute derives stamp metrics from the image width. sizeRatio is the
// width-to-font-size ratio, so a smaller ratio means larger text.
func Compute(width, sizeRatio int) Metrics {
	if sizeRatio <= 0 {
		sizeRatio = 1
	}
	fontSize := width / sizeRatio
	// The lift keeps baseline-anchored text clear of the edge.
	lift := fontSize / 4
	return Metrics{
		FontSize: fontSize,
		Stroke:   width / 800,
		Padding:  width/30 + lift,
	}
}

// Position returns the anchor point and text anchor for placement p inside
// bounds, inset by padding on both axes.
func Position(p Placement, bounds image.Rectangle, padding int) (image.Point, Anchor, error) {
	left := bounds.Min.X + padding
	right := bounds.Max.X - padding
	top := bounds.Min.Y + padding
	bottom := bounds.Max.Y - padding

	switch p {
	case BottomRight:
		return image.Pt(right, bottom), Anchor{Right, Baseline}, nil
	case BottomLeft:
		return image.Pt(left, bottom), Anchor{Left, Baseline}, nil
	case TopRight:
		return image.Pt(right, top), Anchor{Right, Ascender}, nil
	case TopLeft:
		return image.Pt(left, top), Anchor{Left, Ascender}, nil
	}
	return image.Point{}, Anchor{}, fmt.Errorf("%w: %q", ErrUnknownPlacement, string(p))
}
