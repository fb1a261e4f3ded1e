// Package pipeline orchestrates archive discovery, per-archive extraction,
// and batch summary reporting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/YSPlop/google-takeout-photo-collector/internal/config"
	"github.com/YSPlop/google-takeout-photo-collector/internal/display"
	"github.com/YSPlop/google-takeout-photo-collector/internal/extract"
	"github.com/YSPlop/google-takeout-photo-collector/internal/logging"
	"github.com/YSPlop/google-takeout-photo-collector/internal/naming"
	"github.com/YSPlop/google-takeout-photo-collector/internal/term"
)

// Run is the top-level batch entry point. It discovers archives, processes
// each one sequentially, and returns aggregate stats. The only error it
// returns is a discovery failure; per-archive failures are recorded as
// skip outcomes and never abort the batch.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.SourceDir)
	if err != nil {
		return stats, err
	}

	stats.Total = len(files)
	resolver := naming.NewResolver()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processArchive(ctx, cfg, log, path, &stats, resolver)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processArchive handles one archive: walk entries, extract the eligible
// ones, and record a single Outcome. Files already written before a
// mid-archive failure stay on disk; there is no rollback.
func processArchive(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	resolver *naming.Resolver,
) {
	name := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

	var bar *progressbar.ProgressBar
	if showBar(cfg) {
		// Counting costs a second iteration pass; only pay for it when a
		// bar will actually be rendered.
		if total, err := extract.CountEntries(ctx, path); err == nil {
			bar = newProgressBar(total, name)
		}
	}

	before := stats.FilesExtracted
	err := extract.Walk(ctx, path, func(e extract.Entry) error {
		if bar != nil {
			_ = bar.Add(1)
		}
		return extractEntry(cfg, log, e, stats, resolver)
	})
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	stats.Outcomes = append(stats.Outcomes, Outcome{Archive: name, Err: err})
	if err != nil {
		log.Warn("Skipping %s: %s", name, skipReason(err))
		stats.Skipped++
		fmt.Println()
		return
	}

	stats.Succeeded++
	log.Success("Extracted %d file(s)", stats.FilesExtracted-before)
	fmt.Println()
}

// extractEntry handles one archive entry: filter by path shape, resolve a
// collision-free target, and copy the bytes. Ineligible entries are
// excluded silently; any returned error skips the whole archive.
func extractEntry(
	cfg *config.Config,
	log *logging.Logger,
	e extract.Entry,
	stats *RunStats,
	resolver *naming.Resolver,
) error {
	if e.IsDir() {
		return nil
	}

	match, ok := naming.MatchEntry(e.Path(), cfg.Marker, cfg.Extensions)
	if !ok {
		log.Debug(cfg.Verbose, "  ignore: %s", e.Path())
		return nil
	}

	targetDir := filepath.Join(append([]string{cfg.DestDir}, match.Subfolders...)...)

	if cfg.DryRun {
		target := resolver.Resolve(targetDir, match.Filename)
		log.Success("[DRY] %s -> %s", e.Path(), target)
		stats.FilesExtracted++
		stats.BytesExtracted += e.Size()
		return nil
	}

	// Idempotent; same-named subfolders from different archives merge here.
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", targetDir, err)
	}

	target := resolver.Resolve(targetDir, match.Filename)

	src, err := e.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", e.Path(), err)
	}
	written, err := extract.WriteFileExcl(target, src)
	src.Close()
	if err != nil {
		return err
	}

	log.Debug(cfg.Verbose, "  %s -> %s", e.Path(), target)
	stats.FilesExtracted++
	stats.BytesExtracted += written
	return nil
}

func showBar(cfg *config.Config) bool {
	// Dry-run and verbose both log a line per entry, which a live bar
	// would garble.
	return cfg.ShowProgress && !cfg.DryRun && !cfg.Verbose && term.IsTerminal(os.Stderr)
}

func newProgressBar(total int, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "█", SaucerHead: "█", SaucerPadding: "░",
			BarStart: "[", BarEnd: "]",
		}),
	)
}

func skipReason(err error) string {
	if errors.Is(err, extract.ErrInvalidContainer) {
		return "not a valid archive container"
	}
	return fmt.Sprintf("unexpected error (%v)", err)
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d archive(s)", stats.Total)
	log.Info("Marker: %q", cfg.Marker)
	log.Info("Extensions: %s", strings.Join(cfg.Extensions, ", "))
	if cfg.DryRun {
		log.Warn("Dry run: nothing will be written")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")

	successes := stats.Successes()
	if len(successes) > 0 {
		log.Info("Successfully processed %d archive(s):", len(successes))
		for _, name := range successes {
			log.Success("  %s", name)
		}
	} else {
		log.Warn("No archives were successfully processed")
	}

	if skips := stats.Skips(); len(skips) > 0 {
		log.Warn("Skipped %d archive(s):", len(skips))
		for _, o := range skips {
			log.Warn("  %s: %s", o.Archive, skipReason(o.Err))
		}
	}

	if cfg.DryRun {
		log.Info("Would extract %d file(s) (%s)", stats.FilesExtracted, display.FormatBytes(stats.BytesExtracted))
	} else {
		log.Info("Extracted %d file(s) (%s)", stats.FilesExtracted, display.FormatBytes(stats.BytesExtracted))
	}
	log.Success("Done.")
}
