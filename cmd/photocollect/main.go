// Command photocollect is the entrypoint for the Takeout photo collector
// CLI. It parses flags, validates config and paths, and runs the batch
// extraction pipeline over a directory of Takeout archives.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/YSPlop/google-takeout-photo-collector/internal/config"
	"github.com/YSPlop/google-takeout-photo-collector/internal/display"
	"github.com/YSPlop/google-takeout-photo-collector/internal/logging"
	"github.com/YSPlop/google-takeout-photo-collector/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:      "photocollect",
		Usage:     "merge Google Photos images out of a batch of Takeout archives",
		Version:   version,
		ArgsUsage: "<source_dir> <dest_dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "marker",
				Value: config.DefaultMarker,
				Usage: "path component that marks the relevant root inside each archive",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "image extension to extract (repeatable; default: .jpg, .jpeg)",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "preview what would be extracted without writing anything",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every entry decision",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "disable the per-archive progress bar",
			},
			&cli.StringFlag{
				Name:  "color",
				Value: string(config.ColorAuto),
				Usage: "color mode: auto | always | never",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "append logs to file",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "photocollect: %v\n", err)
		os.Exit(1)
	}
}

// run validates arguments and config, then hands control to the pipeline.
// Archive-level failures never surface here; once the batch starts, the
// process exits zero no matter how many archives were skipped.
func run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("need exactly source_dir and dest_dir")
	}

	cfg := config.Default()
	cfg.SourceDir = config.NormalizeDirArg(c.Args().Get(0))
	cfg.DestDir = config.NormalizeDirArg(c.Args().Get(1))
	cfg.Marker = c.String("marker")
	if exts := c.StringSlice("ext"); len(exts) > 0 {
		cfg.Extensions = exts
	}
	cfg.DryRun = c.Bool("dry-run")
	cfg.Verbose = c.Bool("verbose")
	cfg.ShowProgress = !c.Bool("no-progress")
	cfg.LogFile = c.String("log")

	mode, err := config.ParseColorMode(c.String("color"))
	if err != nil {
		return err
	}
	cfg.ColorMode = mode

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	// Source must exist and be a directory; this is the only fatal
	// filesystem condition, checked before any processing.
	fi, err := os.Stat(cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("source directory not found: %s", cfg.SourceDir)
	}
	if !fi.IsDir() {
		return fmt.Errorf("source is not a directory: %s", cfg.SourceDir)
	}

	if !cfg.DryRun {
		sourceAbs, err := absPath(cfg.SourceDir)
		if err != nil {
			return fmt.Errorf("cannot resolve source path: %s", cfg.SourceDir)
		}
		if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
			return fmt.Errorf("cannot create destination directory: %s", cfg.DestDir)
		}
		destAbs, err := absPath(cfg.DestDir)
		if err != nil {
			return fmt.Errorf("cannot resolve destination path: %s", cfg.DestDir)
		}
		if err := cfg.ValidatePaths(sourceAbs, destAbs); err != nil {
			return err
		}
	}

	log.Info("=== photocollect v%s ===", version)
	log.Info("In:  %s", cfg.SourceDir)
	log.Info("Out: %s", cfg.DestDir)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	_, err = pipeline.Run(ctx, &cfg, log)
	return err
}

// absPath returns the absolute path with symlinks resolved, for comparing
// source vs destination hierarchy.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
