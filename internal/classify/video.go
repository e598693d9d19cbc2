package classify

import (
	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// VideoExtensions are the container formats the video flow owns.
var VideoExtensions = []string{
	"mp4", "mov", "avi", "mkv", "wmv", "flv", "webm", "m4v",
	"3gp", "mpg", "mpeg", "m2v", "asf", "ts", "mts", "m2ts",
}

// Video places videos under Year/MM-Month/timestamp_name from the container
// creation time, falling back to file mtime. Unlike photos, videos are never
// skipped: camera footage without container tags still clusters usefully by
// mtime.
type Video struct {
	include func(string) bool
}

// NewVideo returns the video classifier.
func NewVideo() *Video {
	return &Video{include: scan.ExtensionSet(VideoExtensions)}
}

func (*Video) Name() string { return "videos" }

func (v *Video) Includes(path string) bool { return v.include(path) }

func (v *Video) IntendedTarget(rec *scan.FileRecord, md metadata.Metadata) ([]string, string) {
	ts, ok := md.CaptureTime()
	if !ok {
		ts = rec.ModTime
	}
	return dateComponents(ts, rec.Path), ""
}
