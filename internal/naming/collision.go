package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resolver produces collision-free destination file paths. A path is taken
// if it exists on disk or has already been claimed during this run; taken
// paths get an ascending "_N" suffix inserted before the extension. The
// claims map keeps dry runs collision-aware without touching the
// filesystem. All methods are goroutine-safe.
type Resolver struct {
	mu      sync.Mutex
	claimed map[string]bool
}

// NewResolver creates a ready-to-use resolver.
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]bool)}
}

// Resolve returns dir/filename, or the first "stem_N.ext" variant (N = 1,
// 2, ...) that neither exists on disk nor was claimed earlier in this run.
// The returned path is claimed, so every call yields a distinct path.
func (r *Resolver) Resolve(dir, filename string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := filepath.Join(dir, filename)
	if !r.taken(candidate) {
		r.claimed[candidate] = true
		return candidate
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if !r.taken(candidate) {
			r.claimed[candidate] = true
			return candidate
		}
	}
}

func (r *Resolver) taken(path string) bool {
	if r.claimed[path] {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}
