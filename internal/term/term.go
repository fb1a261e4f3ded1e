// Package term provides terminal detection used by the color and progress
// decisions in logging and pipeline.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
