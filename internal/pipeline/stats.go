package pipeline

import (
	"sort"
	"strings"
)

// Outcome records the result of processing one archive: success when Err
// is nil, skipped (with reason) otherwise. Outcomes are per-archive, never
// per-entry.
type Outcome struct {
	Archive string
	Err     error
}

// Skipped reports whether the archive was recorded as skipped.
func (o Outcome) Skipped() bool { return o.Err != nil }

// RunStats tracks aggregate counters, byte totals, and per-archive
// outcomes across a batch run.
type RunStats struct {
	Total          int
	Current        int
	Succeeded      int
	Skipped        int
	FilesExtracted int
	BytesExtracted int64
	Outcomes       []Outcome
}

// Successes returns the names of successfully processed archives sorted
// case-insensitively, regardless of processing order.
func (s *RunStats) Successes() []string {
	var names []string
	for _, o := range s.Outcomes {
		if !o.Skipped() {
			names = append(names, o.Archive)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	return names
}

// Skips returns the skipped outcomes in chronological skip order.
func (s *RunStats) Skips() []Outcome {
	var skips []Outcome
	for _, o := range s.Outcomes {
		if o.Skipped() {
			skips = append(skips, o)
		}
	}
	return skips
}
