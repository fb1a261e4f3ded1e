package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Recognized archive container suffixes (lowercase). Google Takeout hands
// out zip by default and tgz for large exports.
var archiveSuffixes = []string{".zip", ".tgz", ".tar.gz"}

// Discover lists the archive files at the top level of sourceDir (no
// recursion) and returns their full paths sorted by name, case-insensitive
// ascending. Identical directory contents always yield identical order.
func Discover(sourceDir string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isArchiveName(entry.Name()) {
			files = append(files, filepath.Join(sourceDir, entry.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := strings.ToLower(files[i]), strings.ToLower(files[j])
		if a != b {
			return a < b
		}
		// Names equal under case folding: fall back to raw order so the
		// result does not depend on filesystem enumeration order.
		return files[i] < files[j]
	})
	return files, nil
}

func isArchiveName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
