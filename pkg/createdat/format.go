package createdat

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// NoTimestamp is the stamp text used when no time source is available.
const NoTimestamp = "No timestamp"

// ErrUnknownFormat is returned by ParseFormat for names outside both|date|time.
var ErrUnknownFormat = errors.New("unknown timestamp format")

// Format selects the granularity of a rendered timestamp.
type Format string

const (
	FormatBoth Format = "both"
	FormatDate Format = "date"
	FormatTime Format = "time"
)

var layouts = map[Format]string{
	FormatDate: "02.01.2006",
	FormatTime: "15:04",
	FormatBoth: "02.01.2006 15:04",
}

// Formats lists the accepted format names in display order.
func Formats() []Format {
	return []Format{FormatBoth, FormatDate, FormatTime}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := layouts[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Layout returns the time layout for f; unknown values fall back to FormatBoth.
func (f Format) Layout() string {
	if l, ok := layouts[f]; ok {
		return l
	}
	return layouts[FormatBoth]
}

// Text renders r per the requested format, or NoTimestamp when r has no time.
// Metadata times are wall-clock values and are printed as recorded; only
// filesystem times are converted to opts.Location.
func (r Result) Text(opts Options) string {
	if r.Source == SourceUnknown || r.CreatedAt.IsZero() {
		return NoTimestamp
	}
	if r.Source == SourceMetadata {
		return r.CreatedAt.Format(opts.Format.Layout())
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return r.CreatedAt.In(loc).Format(opts.Format.Layout())
}

// Resolve returns the stamp text for path. It never fails: if neither embedded
// metadata nor the filesystem yields a time, NoTimestamp is returned.
func Resolve(fsys fs.FS, path string, opts Options) string {
	res, err := Determine(fsys, path, opts)
	if err != nil {
		return NoTimestamp
	}
	return res.Text(opts)
}
