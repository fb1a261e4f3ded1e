package display

import (
	"fmt"
)

// FormatBytes renders a byte count with a binary-unit suffix. TiB is the
// largest unit; Takeout exports never get anywhere near it.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	value := float64(bytes) / unit
	i := 0
	for value >= unit && i < len(suffixes)-1 {
		value /= unit
		i++
	}
	return fmt.Sprintf("%.1f %s", value, suffixes[i])
}
