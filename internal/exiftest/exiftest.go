// Package exiftest builds small images carrying EXIF capture times for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
)

const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003

	typeASCII = 2
	typeLong  = 4

	ifdLen = 2 + 12 + 4 // one entry plus the next-IFD offset
)

// JPEG returns a w×h mid-grey JPEG whose APP1 segment records dateTimeOriginal
// (EXIF layout "2006:01:02 15:04:05") as the DateTimeOriginal tag.
func JPEG(w, h int, dateTimeOriginal string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	enc := buf.Bytes()

	out := make([]byte, 0, len(enc)+128)
	out = append(out, enc[:2]...) // SOI
	out = append(out, APP1(dateTimeOriginal)...)
	out = append(out, enc[2:]...)
	return out, nil
}

// APP1 returns a complete little-endian EXIF APP1 segment with IFD0 pointing
// at an Exif sub-IFD that holds only DateTimeOriginal.
func APP1(dateTimeOriginal string) []byte {
	le := binary.LittleEndian
	value := append([]byte(dateTimeOriginal), 0)

	exifIFD := uint32(8 + ifdLen)
	dataOff := exifIFD + ifdLen

	tiff := []byte{'I', 'I', 0x2A, 0x00}
	tiff = le.AppendUint32(tiff, 8)

	tiff = le.AppendUint16(tiff, 1)
	tiff = le.AppendUint16(tiff, tagExifIFDPointer)
	tiff = le.AppendUint16(tiff, typeLong)
	tiff = le.AppendUint32(tiff, 1)
	tiff = le.AppendUint32(tiff, exifIFD)
	tiff = le.AppendUint32(tiff, 0)

	tiff = le.AppendUint16(tiff, 1)
	tiff = le.AppendUint16(tiff, tagDateTimeOriginal)
	tiff = le.AppendUint16(tiff, typeASCII)
	tiff = le.AppendUint32(tiff, uint32(len(value)))
	if len(value) <= 4 {
		inline := make([]byte, 4)
		copy(inline, value)
		tiff = append(tiff, inline...)
	} else {
		tiff = le.AppendUint32(tiff, dataOff)
	}
	tiff = le.AppendUint32(tiff, 0)
	if len(value) > 4 {
		tiff = append(tiff, value...)
	}

	payload := append([]byte("Exif\x00\x00"), tiff...)
	seg := []byte{0xFF, 0xE1}
	seg = binary.BigEndian.AppendUint16(seg, uint16(len(payload)+2))
	return append(seg, payload...)
}
