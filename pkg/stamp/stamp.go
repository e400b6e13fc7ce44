// Package stamp runs the per-image pipeline: resolve the timestamp, render it
// onto the image and write the result.
package stamp

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/quidome/photo-stamp/pkg/createdat"
	"github.com/quidome/photo-stamp/pkg/plan"
	"github.com/quidome/photo-stamp/pkg/render"
)

// Result contains the outcome of a stamp operation.
type Result struct {
	Operation plan.Operation
	Text      string
	Success   bool
	Error     error
}

// Options configures Execute. Style and Placement are shared read-only by
// every operation.
type Options struct {
	Style     render.Style
	Placement render.Placement
	CreatedAt createdat.Options

	Logger *zap.Logger

	// OnStamp, if set, is called for each operation once its stamp text is known.
	OnStamp func(op plan.Operation, text string)
	// OnDone, if set, is called once per operation after it has been written
	// or has failed.
	OnDone func(r Result)
}

// Execute stamps each operation in order.
//
// A failing operation is logged and recorded in its Result; it never stops
// the remaining operations. The returned error is reserved for invalid options.
func Execute(operations []plan.Operation, opts Options) ([]Result, error) {
	if _, err := render.ParsePlacement(string(opts.Placement)); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(operations))
	for _, op := range operations {
		result := Result{Operation: op}

		text, err := File(op, opts)
		result.Text = text
		if err != nil {
			logger.Error(fmt.Sprintf("Error processing %s", op.SourcePath),
				zap.String("path", op.SourcePath),
				zap.Error(err),
			)
			result.Error = err
			results = append(results, result)
			if opts.OnDone != nil {
				opts.OnDone(result)
			}
			continue
		}

		logger.Debug("stamped",
			zap.String("path", op.SourcePath),
			zap.String("dest", op.DestinationPath),
			zap.String("text", text),
		)
		result.Success = true
		results = append(results, result)
		if opts.OnDone != nil {
			opts.OnDone(result)
		}
	}

	return results, nil
}

// File stamps a single operation and returns the stamp text it used.
func File(op plan.Operation, opts Options) (string, error) {
	dir, name := filepath.Dir(op.SourcePath), filepath.Base(op.SourcePath)
	text := createdat.Resolve(os.DirFS(dir), name, opts.CreatedAt)
	if opts.OnStamp != nil {
		opts.OnStamp(op, text)
	}

	img, err := decodeFile(op.SourcePath)
	if err != nil {
		return text, err
	}

	out, err := render.Render(img, text, opts.Style, opts.Placement)
	if err != nil {
		return text, fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(op.DestinationPath), 0o755); err != nil {
		return text, fmt.Errorf("create directory: %w", err)
	}
	if err := encodeFile(op.DestinationPath, out); err != nil {
		return text, err
	}
	return text, nil
}
