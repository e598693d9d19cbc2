// Package census counts file types recursively, answering "what did the
// recovery tool actually carve out" before any organizing flow runs.
package census

import (
	"path/filepath"
	"sort"
	"strings"

	"reclaim/internal/scan"
)

// NoExtension labels files without an extension in reports.
const NoExtension = "no_extension"

// Entry is one extension's share of the scanned tree.
type Entry struct {
	Extension string
	Count     int
	Percent   float64
}

// Report is the full census of a tree.
type Report struct {
	Total   int
	Entries []Entry
	// Unreadable lists paths the walk could not inspect.
	Unreadable []string
}

// Count walks root recursively and tallies files by lowercase extension.
// Entries are ordered by count descending, then extension name.
func Count(root string, includeHidden bool) (Report, error) {
	records, problems, err := scan.Walk(root, scan.Options{IncludeHidden: includeHidden})
	if err != nil {
		return Report{}, err
	}

	counts := make(map[string]int)
	for _, rec := range records {
		counts[Extension(rec.Path)]++
	}

	report := Report{Total: len(records)}
	for _, problem := range problems {
		report.Unreadable = append(report.Unreadable, problem.Path)
	}
	for ext, count := range counts {
		entry := Entry{Extension: ext, Count: count}
		if report.Total > 0 {
			entry.Percent = float64(count) / float64(report.Total) * 100
		}
		report.Entries = append(report.Entries, entry)
	}
	sort.Slice(report.Entries, func(i, j int) bool {
		if report.Entries[i].Count != report.Entries[j].Count {
			return report.Entries[i].Count > report.Entries[j].Count
		}
		return report.Entries[i].Extension < report.Entries[j].Extension
	})
	return report, nil
}

// Extension returns the lowercase extension without the dot, or NoExtension.
func Extension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return NoExtension
	}
	return ext
}
