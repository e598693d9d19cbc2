package classify

import (
	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// DedupOnly owns every file and reorganizes nothing: canonical files stay in
// place and only byte-identical copies are acted on. Pair it with duplicate
// detection and deletion for the dedicated dedupe flow.
type DedupOnly struct {
	include func(string) bool
}

// NewDedupOnly returns the in-place dedupe classifier. An empty extension
// list means every file is a candidate.
func NewDedupOnly(extensions []string) *DedupOnly {
	d := &DedupOnly{}
	if len(extensions) > 0 {
		d.include = scan.ExtensionSet(extensions)
	}
	return d
}

func (*DedupOnly) Name() string { return "dedupe" }

func (d *DedupOnly) Includes(path string) bool {
	if d.include == nil {
		return true
	}
	return d.include(path)
}

func (*DedupOnly) IntendedTarget(*scan.FileRecord, metadata.Metadata) ([]string, string) {
	return nil, ""
}
