package classify

import (
	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// PhotoExtensions are the image formats the photo flow owns, including the
// camera raw formats recovery tools commonly carve out.
var PhotoExtensions = []string{
	"jpg", "jpeg", "tiff", "tif", "png", "bmp", "gif", "webp",
	"heic", "heif", "raw", "cr2", "nef", "arw", "dng",
}

// Photo places images under Year/MM-Month/timestamp_name from their EXIF
// capture date. Images without a capture date are skipped: a recovered photo
// with no date cannot be placed chronologically and guessing from mtime
// would scatter it (carving resets mtimes).
type Photo struct {
	include func(string) bool
}

// NewPhoto returns the photo classifier.
func NewPhoto() *Photo {
	return &Photo{include: scan.ExtensionSet(PhotoExtensions)}
}

func (*Photo) Name() string { return "photos" }

func (p *Photo) Includes(path string) bool { return p.include(path) }

func (p *Photo) IntendedTarget(rec *scan.FileRecord, md metadata.Metadata) ([]string, string) {
	ts, ok := md.CaptureTime()
	if !ok {
		return nil, "no capture date in EXIF"
	}
	return dateComponents(ts, rec.Path), ""
}
