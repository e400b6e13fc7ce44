package createdat

import (
	"io"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifLayout is the fixed EXIF date-time layout. It carries no zone; values are
// kept as wall-clock time in UTC and never converted.
const exifLayout = "2006:01:02 15:04:05"

type exifExtractor struct{}

func (e exifExtractor) CreatedAt(path string, r io.Reader) (time.Time, bool, error) {
	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return time.Time{}, false, nil
	}

	f, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false, nil
	}
	s, err := f.StringVal()
	if err != nil {
		return time.Time{}, false, nil
	}

	tm, err := time.Parse(exifLayout, strings.TrimSpace(strings.TrimRight(s, "\x00")))
	if err != nil {
		return time.Time{}, false, nil
	}
	return tm, true, nil
}
