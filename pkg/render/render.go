// Package render burns a line of text into a copy of an image.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Style is the run-wide appearance of a stamp. It is built once and shared
// across all images of a batch.
type Style struct {
	Fill color.Color
	// Outline is drawn behind the fill, dilated by the stroke width. Nil
	// disables the outline pass.
	Outline color.Color
	Font    *opentype.Font
	// SizeRatio is image width divided by font size.
	SizeRatio int
}

// Render returns an opaque copy of img with text drawn at placement p. The
// input is not modified and the output has the same bounds.
func Render(img image.Image, text string, st Style, p Placement) (*image.NRGBA, error) {
	b := img.Bounds()
	m := Compute(b.Dx(), st.SizeRatio)

	pt, anchor, err := Position(p, b, m.Padding)
	if err != nil {
		return nil, err
	}

	face, err := newFace(st.Font, m.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	layer := image.NewRGBA(b)
	dot := origin(face, text, pt, anchor)
	if st.Outline != nil {
		drawText(layer, face, text, dot, st.Outline, m.Stroke)
	}
	fill := st.Fill
	if fill == nil {
		fill = color.White
	}
	drawText(layer, face, text, dot, fill, 0)

	out := straightCopy(img)
	over(out, layer)
	flatten(out)
	return out, nil
}

// straightCopy copies img into a new NRGBA. NRGBA sources are copied byte for
// byte so transparent pixels keep their stored colour.
func straightCopy(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)

	src, ok := img.(*image.NRGBA)
	if !ok {
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}
	n := 4 * b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		so := src.PixOffset(b.Min.X, y)
		do := out.PixOffset(b.Min.X, y)
		copy(out.Pix[do:do+n], src.Pix[so:so+n])
	}
	return out
}

// over composites the premultiplied layer onto dst in place. Pixels where the
// layer is fully transparent are left untouched.
func over(dst *image.NRGBA, layer *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			li := layer.PixOffset(x, y)
			sa := uint32(layer.Pix[li+3])
			if sa == 0 {
				continue
			}
			di := dst.PixOffset(x, y)
			da := uint32(dst.Pix[di+3])

			// Alpha and premultiplied channels below are scaled by 255 and 255*255.
			outA := sa*255 + da*(255-sa)
			for c := 0; c < 3; c++ {
				num := uint32(layer.Pix[li+c])*255*255 + uint32(dst.Pix[di+c])*da*(255-sa)
				v := (num + outA/2) / outA
				if v > 0xFF {
					v = 0xFF
				}
				dst.Pix[di+c] = uint8(v)
			}
			dst.Pix[di+3] = uint8((outA + 127) / 255)
		}
	}
}

// origin converts an anchor point into the pen position (left end of the
// baseline) expected by font.Drawer.
func origin(face font.Face, text string, pt image.Point, a Anchor) fixed.Point26_6 {
	dot := fixed.P(pt.X, pt.Y)
	if a.Horizontal == Right {
		dot.X -= font.MeasureString(face, text)
	}
	if a.Vertical == Ascender {
		dot.Y += face.Metrics().Ascent
	}
	return dot
}

func drawText(dst draw.Image, face font.Face, text string, dot fixed.Point26_6, c color.Color, radius int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	for _, off := range discOffsets(radius) {
		d.Dot = dot.Add(fixed.P(off.X, off.Y))
		d.DrawString(text)
	}
}

// discOffsets lists the integer offsets within radius of the origin, in a fixed order.
func discOffsets(radius int) []image.Point {
	if radius <= 0 {
		return []image.Point{{}}
	}
	var pts []image.Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}

// flatten drops per-pixel transparency, keeping the straight colour channels.
func flatten(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xFF
		}
	}
}
