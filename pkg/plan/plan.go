// Package plan maps source images to their output paths.
package plan

import (
	"path/filepath"
)

// Operation represents a planned stamp from source to destination.
type Operation struct {
	SourcePath      string
	DestinationPath string
}

// Destination returns <outDir>/<basename of src>. Same-named sources from
// different directories map to the same destination; the later one wins.
func Destination(outDir string, src string) string {
	return filepath.Join(outDir, filepath.Base(src))
}

// Plan computes destination paths for a list of source files, preserving order.
func Plan(outDir string, sources []string) []Operation {
	operations := make([]Operation, 0, len(sources))
	for _, src := range sources {
		operations = append(operations, Operation{
			SourcePath:      src,
			DestinationPath: Destination(outDir, src),
		})
	}
	return operations
}
