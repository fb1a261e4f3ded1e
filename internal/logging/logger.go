// Package logging provides a leveled, optionally colored logger with an
// optional file sink. Level tags are colored on interactive terminals;
// the file sink always receives plain text.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/YSPlop/google-takeout-photo-collector/internal/config"
	"github.com/YSPlop/google-takeout-photo-collector/internal/term"
)

// Level tag colors. color.NoColor (set once in NewLogger) turns these into
// plain Sprint calls when colors are disabled.
var (
	infoColor    = color.New(color.FgHiBlue, color.Bold)
	successColor = color.New(color.FgHiGreen, color.Bold)
	warnColor    = color.New(color.FgHiYellow, color.Bold)
	errorColor   = color.New(color.FgHiRed, color.Bold)
	debugColor   = color.New(color.FgHiCyan, color.Bold)
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	filePath string
}

// NewLogger resolves the color mode from cfg and optionally opens LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	switch cfg.ColorMode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAuto:
		color.NoColor = !term.IsTerminal(os.Stdout) ||
			os.Getenv("NO_COLOR") != "" ||
			strings.ToLower(os.Getenv("TERM")) == "dumb"
	}

	l := &Logger{}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, ts+" "+c.Sprint("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoColor, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", successColor, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", warnColor, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorColor, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", debugColor, fmt.Sprintf(format, args...))
}
