package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := ` ____  _           _         ____      _ _           _
|  _ \| |__   ___ | |_ ___  / ___|___ | | | ___  ___| |_
| |_) | '_ \ / _ \| __/ _ \| |   / _ \| | |/ _ \/ __| __|
|  __/| | | | (_) | || (_) | |__| (_) | | |  __/ (__| |_
|_|   |_| |_|\___/ \__\___/ \____\___/|_|_|\___|\___|\__|
`
	_, _ = color.New(color.FgHiMagenta, color.Bold).Fprint(os.Stdout, banner)
	fmt.Fprintln(os.Stdout)
}
