package metadata

import (
	"context"
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// PhotoExtractor reads the capture timestamp from EXIF data.
type PhotoExtractor struct{}

func (PhotoExtractor) Extract(_ context.Context, path string) (Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	md := Metadata{}
	x, err := exif.Decode(file)
	if err != nil {
		// No EXIF block, or a truncated one; both are routine for carved
		// files and leave the mapping empty.
		return md, nil
	}

	// DateTime prefers DateTimeOriginal and falls back through the
	// digitized and modification tags.
	if ts, err := x.DateTime(); err == nil {
		md.SetCaptureTime(ts)
	}
	return md, nil
}
