// Package naming decides which archive entries are eligible for extraction
// and resolves collision-free destination paths under the output root.
package naming

import (
	"path"
	"strings"
)

// EntryPath is the decomposed internal path of an eligible archive entry:
// the subfolder components strictly between the marker component and the
// filename (order preserved, possibly empty), plus the filename itself.
type EntryPath struct {
	Subfolders []string
	Filename   string
}

// MatchEntry reports whether an entry's internal path is eligible for
// extraction and, if so, returns its decomposition. Eligibility requires:
//
//  1. marker appears among the path components (exact, case-sensitive);
//  2. the filename extension is in exts (compared case-insensitively).
//
// exts entries must be lowercase with a leading dot (see config.Validate).
func MatchEntry(internalPath, marker string, exts []string) (EntryPath, bool) {
	parts := splitComponents(internalPath)
	if len(parts) == 0 {
		return EntryPath{}, false
	}

	markerIdx := -1
	for i, p := range parts {
		if p == marker {
			markerIdx = i
			break
		}
	}
	if markerIdx < 0 {
		return EntryPath{}, false
	}

	filename := parts[len(parts)-1]
	if !extAllowed(filename, exts) {
		return EntryPath{}, false
	}

	// Components strictly between the marker and the filename. Empty when
	// the marker is the immediate parent (or the filename itself, in which
	// case the extension check above already rejected it).
	var subfolders []string
	if markerIdx+1 < len(parts)-1 {
		subfolders = append(subfolders, parts[markerIdx+1:len(parts)-1]...)
	}
	return EntryPath{Subfolders: subfolders, Filename: filename}, true
}

// splitComponents breaks an archive-internal path into its non-empty
// components. Archive entry names use forward slashes regardless of host OS.
func splitComponents(internalPath string) []string {
	var parts []string
	for _, p := range strings.Split(internalPath, "/") {
		if p != "" && p != "." {
			parts = append(parts, p)
		}
	}
	return parts
}

func extAllowed(filename string, exts []string) bool {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return false
	}
	for _, allowed := range exts {
		if ext == allowed {
			return true
		}
	}
	return false
}
