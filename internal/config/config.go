// Package config holds runtime configuration: defaults, validation, and
// path normalization. Defaults target the Google Takeout photo layout
// (marker "Google Photos", JPEG only).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMarker is the path component that marks the relevant root inside
// each archive. Entries whose internal path does not contain it are ignored.
const DefaultMarker = "Google Photos"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}

// Config holds all runtime settings. It is populated by [Default] and then
// mutated from CLI flags before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Paths (set from positional args).
	SourceDir string
	DestDir   string

	// Entry selection.
	Marker     string   // Default: "Google Photos".
	Extensions []string // Default: .jpg, .jpeg. Normalized by Validate.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose      bool
	ShowProgress bool      // Default: true. Cleared by --no-progress.
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.
}

// Default returns a Config with all defaults set. Used as the base before
// CLI overrides are applied.
func Default() Config {
	return Config{
		Marker:       DefaultMarker,
		Extensions:   []string{".jpg", ".jpeg"},
		DryRun:       false,
		Verbose:      false,
		ShowProgress: true,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields, requires both directory paths, and
// normalizes the extension allow-list (lowercase, leading dot).
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Marker == "" {
		return errors.New("marker must not be empty")
	}
	if strings.ContainsAny(c.Marker, `/\`) {
		return fmt.Errorf("marker %q must be a single path component", c.Marker)
	}

	if len(c.Extensions) == 0 {
		return errors.New("extension allow-list must not be empty")
	}
	normalized := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		e, err := normalizeExtension(ext)
		if err != nil {
			return err
		}
		normalized = append(normalized, e)
	}
	c.Extensions = normalized

	if c.SourceDir == "" || c.DestDir == "" {
		return errors.New("need exactly source_dir and dest_dir")
	}
	return nil
}

// normalizeExtension canonicalizes user extension input.
// Accepted forms: "jpg", ".jpg", "JPG". Output is ".jpg".
func normalizeExtension(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, ".")
	if s == "" || strings.ContainsAny(s, `./\`) {
		return "", fmt.Errorf("invalid extension %q (use e.g. 'jpg' or '.jpg')", raw)
	}
	return "." + s, nil
}

// ValidatePaths ensures the resolved destination directory is not the same
// as (or inside) the resolved source directory, so extracted files cannot
// land next to the archives they came from. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep) {
		return errors.New("destination directory must not be inside source directory")
	}
	return nil
}
