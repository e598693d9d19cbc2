package metadata

import (
	"context"

	"reclaim/internal/ffprobe"
)

// VideoExtractor reads the recording creation time from container tags via
// ffprobe.
type VideoExtractor struct {
	// Binary is the ffprobe executable; empty means "ffprobe" from PATH.
	Binary string
}

func (e VideoExtractor) Extract(ctx context.Context, path string) (Metadata, error) {
	result, err := ffprobe.Inspect(ctx, e.Binary, path)
	if err != nil {
		// A file ffprobe cannot open at all is genuinely unreadable.
		return nil, err
	}

	md := Metadata{}
	if ts, ok := result.CreationTime(); ok {
		md.SetCaptureTime(ts)
	}
	return md, nil
}
