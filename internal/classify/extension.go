package classify

import (
	"path/filepath"
	"strings"

	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// Extension buckets files into flat <ext>_files directories. It is the junk
// flow's policy for pulling known file types out of an undifferentiated
// recovery dump.
type Extension struct {
	include func(string) bool
}

// NewExtension returns a classifier owning exactly the given extensions.
func NewExtension(extensions []string) *Extension {
	return &Extension{include: scan.ExtensionSet(extensions)}
}

func (*Extension) Name() string { return "junk" }

func (e *Extension) Includes(path string) bool { return e.include(path) }

func (e *Extension) IntendedTarget(rec *scan.FileRecord, _ metadata.Metadata) ([]string, string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(rec.Path), "."))
	if ext == "" {
		ext = "no_extension"
	}
	return []string{ext + "_files", filepath.Base(rec.Path)}, ""
}
