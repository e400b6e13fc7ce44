package createdat

import (
	"io"
	"io/fs"
	"path/filepath"
	"time"
)

// Source describes where a CreatedAt timestamp was derived from.
//
// The priority order is:
//  1. metadata
//  2. mtime
//  3. unknown
type Source string

const (
	SourceMetadata Source = "metadata"
	SourceMtime    Source = "mtime"
	SourceUnknown  Source = "unknown"
)

// Result contains a best-effort creation timestamp and its source.
type Result struct {
	CreatedAt time.Time
	Source    Source
}

// DetailedResult contains all considered timestamps from different sources.
type DetailedResult struct {
	// Best is the chosen timestamp using priority: metadata > mtime
	Best Result

	// Metadata is the timestamp extracted from embedded metadata (EXIF DateTimeOriginal)
	Metadata time.Time

	// Filestat is the mtime from filesystem metadata
	Filestat time.Time
}

// MetadataExtractor extracts an embedded creation timestamp from an image stream.
//
// Implementations should return (t, true, nil) when a timestamp is found.
// If no timestamp exists, return (time.Time{}, false, nil).
// Errors are treated as "no metadata" by Determine.
type MetadataExtractor interface {
	CreatedAt(path string, r io.Reader) (time.Time, bool, error)
}

// Options configures Determine and Resolve.
type Options struct {
	// Location is the zone filesystem timestamps are rendered in. If nil,
	// time.Local is used. Embedded metadata times are never converted.
	Location *time.Location

	// Metadata optionally extracts embedded timestamps.
	//
	// If nil, a default EXIF-based extractor is used.
	Metadata MetadataExtractor

	// Format selects the granularity of the rendered text. Empty means FormatBoth.
	Format Format
}

// Determine returns the best-effort created-at timestamp for a path.
func Determine(fsys fs.FS, path string, opts Options) (Result, error) {
	detailed, err := DetermineDetailed(fsys, path, opts)
	if err != nil {
		return Result{}, err
	}
	return detailed.Best, nil
}

// DetermineDetailed returns all considered timestamps for a path.
//
// Only a failure to stat the path is returned as an error; problems reading
// embedded metadata mean the metadata stage yields nothing.
func DetermineDetailed(fsys fs.FS, path string, opts Options) (DetailedResult, error) {
	path = filepath.ToSlash(filepath.Clean(path))

	info, err := fs.Stat(fsys, path)
	if err != nil {
		return DetailedResult{}, err
	}
	if info.IsDir() {
		return DetailedResult{}, fs.ErrInvalid
	}

	metadata := opts.Metadata
	if metadata == nil {
		metadata = exifExtractor{}
	}

	var result DetailedResult
	if createdAt, ok := metadataTime(fsys, path, metadata); ok {
		result.Metadata = createdAt
	}
	if mtime := info.ModTime(); !mtime.IsZero() {
		result.Filestat = mtime
	}

	result.Best = Result{Source: SourceUnknown}
	for _, c := range []Result{
		{CreatedAt: result.Metadata, Source: SourceMetadata},
		{CreatedAt: result.Filestat, Source: SourceMtime},
	} {
		if !c.CreatedAt.IsZero() {
			result.Best = c
			break
		}
	}

	return result, nil
}

func metadataTime(fsys fs.FS, path string, metadata MetadataExtractor) (time.Time, bool) {
	f, err := fsys.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	createdAt, ok, err := metadata.CreatedAt(path, f)
	if err != nil || !ok || createdAt.IsZero() {
		return time.Time{}, false
	}
	return createdAt, true
}
