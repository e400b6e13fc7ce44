// Package scan selects the image files of a directory that are eligible for stamping.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

type Options struct {
	// MaxDepth limits recursion below root; 0 means top-level entries only
	// and -1 means unlimited.
	MaxDepth int

	// Extensions is the case-insensitive allow-list, with or without the leading dot.
	Extensions []string
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:   0,
		Extensions: []string{".png", ".jpg", ".jpeg", ".gif"},
	}
}

// Scan returns the slash-separated paths, relative to root, of the files
// under root whose extension is in the allow-list. Non-matching files and
// directories deeper than MaxDepth are skipped silently.
func Scan(fsys fs.FS, root string, opts Options) ([]string, error) {
	if opts.MaxDepth < -1 {
		return nil, fs.ErrInvalid
	}

	exts := normalizeExts(opts.Extensions)

	var matches []string

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if opts.MaxDepth >= 0 && depth(rel) >= opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if opts.MaxDepth >= 0 && depth(rel) > opts.MaxDepth {
			return nil
		}

		if !exts[strings.ToLower(filepath.Ext(rel))] {
			return nil
		}

		matches = append(matches, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// Match reports whether name carries one of the allowed extensions.
func Match(name string, opts Options) bool {
	return normalizeExts(opts.Extensions)[strings.ToLower(filepath.Ext(name))]
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(strings.ToLower(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}

func depth(rel string) int {
	rel = filepath.Clean(rel)
	if rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/")
}
