package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quidome/photo-stamp/pkg/createdat"
	"github.com/quidome/photo-stamp/pkg/plan"
	"github.com/quidome/photo-stamp/pkg/render"
	"github.com/quidome/photo-stamp/pkg/scan"
	"github.com/quidome/photo-stamp/pkg/stamp"
	"github.com/quidome/photo-stamp/pkg/style"
)

const version = "0.1.0"

const defaultOutputDir = "stamped"

type options struct {
	verbose     bool
	presetsFile string
}

type stampOptions struct {
	preset       string
	color        string
	outlineColor string
	format       string
	size         int
	position     string
	output       string
	font         string
	progress     bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	sopts := &stampOptions{}

	rootCmd := &cobra.Command{
		Use:          "photo-stamp [path]",
		Short:        "Add a timestamp to photos",
		Long:         "Photo Stamp burns the capture time of a photo (EXIF DateTimeOriginal, or the file modification time) into a corner of the image. The path may be a single image or a directory of images.",
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(cmd, opts, sopts, args[0])
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.presetsFile, "presets", "", "YAML file with additional color presets")

	builtin := style.Builtin().Names()
	formats := make([]string, 0, 3)
	for _, f := range createdat.Formats() {
		formats = append(formats, string(f))
	}
	positions := make([]string, 0, 4)
	for _, p := range render.Placements() {
		positions = append(positions, string(p))
	}

	flags := rootCmd.Flags()
	flags.StringVar(&sopts.preset, "preset", style.DefaultPreset, fmt.Sprintf("color preset to use (%s)", strings.Join(builtin, ", ")))
	flags.StringVar(&sopts.color, "color", "", "custom text color (hex code, e.g. '#FF0000'); overrides the preset")
	flags.StringVar(&sopts.outlineColor, "outline-color", "", "custom outline color (hex code); overrides the preset")
	flags.StringVar(&sopts.format, "format", string(createdat.FormatBoth), fmt.Sprintf("timestamp format (%s)", strings.Join(formats, ", ")))
	flags.IntVar(&sopts.size, "size", 50, "text size as a ratio of image width; a smaller number means larger text")
	flags.StringVar(&sopts.position, "position", string(render.BottomRight), fmt.Sprintf("timestamp position (%s)", strings.Join(positions, ", ")))
	flags.StringVarP(&sopts.output, "output", "o", defaultOutputDir, "directory stamped images are written to")
	flags.StringVar(&sopts.font, "font", render.DefaultFontPath, "TrueType/OpenType font file")
	flags.BoolVar(&sopts.progress, "progress", false, "show a progress bar instead of per-file lines")

	rootCmd.AddCommand(newPresetsCmd(opts))

	return rootCmd
}

func newPresetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available color presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets(opts)
			if err != nil {
				return err
			}
			for _, name := range presets.Names() {
				p := presets[name]
				marker := ""
				if name == style.DefaultPreset {
					marker = " (default)"
				}
				cmd.Printf("%-10s %-9s %s%s\n", name, p.Color, p.Outline, marker)
			}
			return nil
		},
	}
}

func loadPresets(opts *options) (style.Presets, error) {
	if opts.presetsFile == "" {
		return style.Builtin(), nil
	}
	return style.LoadFile(opts.presetsFile)
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

func runStamp(cmd *cobra.Command, opts *options, sopts *stampOptions, path string) error {
	format, err := createdat.ParseFormat(sopts.format)
	if err != nil {
		return err
	}
	placement, err := render.ParsePlacement(sopts.position)
	if err != nil {
		return err
	}
	if sopts.size <= 0 {
		return fmt.Errorf("size must be a positive integer, got %d", sopts.size)
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	presets, err := loadPresets(opts)
	if err != nil {
		return err
	}
	colors, err := style.Resolve(presets, style.Request{
		Preset:  sopts.preset,
		Color:   sopts.color,
		Outline: sopts.outlineColor,
	}, logger)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		cmd.PrintErrf("Error: Path not found - %s\n", path)
		return fmt.Errorf("path not found: %w", err)
	}

	if _, err := os.Stat(sopts.output); os.IsNotExist(err) {
		if err := os.MkdirAll(sopts.output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		cmd.Printf("Created directory: %s\n", sopts.output)
	}

	var sources []string
	if info.IsDir() {
		cmd.Printf("Processing all images in directory: %s\n", path)
		matches, err := scan.Scan(os.DirFS(path), ".", scan.DefaultOptions())
		if err != nil {
			return err
		}
		for _, m := range matches {
			sources = append(sources, filepath.Join(path, filepath.FromSlash(m)))
		}
	} else {
		if !scan.Match(path, scan.DefaultOptions()) {
			logger.Debug("extension outside directory allow-list", zap.String("path", path))
		}
		sources = []string{path}
	}
	logger.Debug("selected images", zap.String("path", path), zap.Int("count", len(sources)))

	stampOpts := stamp.Options{
		Style: render.Style{
			Fill:      colors.Fill,
			Outline:   colors.Outline,
			Font:      render.LoadFontOrFallback(sopts.font, logger),
			SizeRatio: sopts.size,
		},
		Placement: placement,
		CreatedAt: createdat.Options{Format: format},
		Logger:    logger,
	}

	var bar *pb.ProgressBar
	if sopts.progress {
		bar = pb.New(len(sources))
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
		stampOpts.OnDone = func(stamp.Result) { bar.Increment() }
	} else {
		stampOpts.OnStamp = func(op plan.Operation, text string) {
			cmd.Printf("Processing %s -> Stamp: %s\n", filepath.Base(op.SourcePath), text)
		}
	}

	results, err := stamp.Execute(plan.Plan(sopts.output, sources), stampOpts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	cmd.Println("")
	cmd.Printf("Complete! Stamped %d of %d image(s) into %s\n", len(results)-failed, len(results), sopts.output)
	return nil
}
