// Package metadata extracts classification inputs from recovered files:
// audio tags, EXIF capture dates, and video container timestamps.
//
// The organizing engine treats the mapping as opaque. Absent tags are normal
// for recovered files and never an error; extractors only fail for files
// that cannot be opened or probed at all.
package metadata

import (
	"context"
	"time"
)

// Semantic keys classifiers look up. Every key is optional.
const (
	KeyArtist      = "artist"
	KeyAlbum       = "album"
	KeyTitle       = "title"
	KeyTrack       = "track"
	KeyGenre       = "genre"
	KeyYear        = "year"
	KeyCaptureTime = "capture_time"
)

// Metadata is an opaque key -> value mapping. Values are strings; the
// capture timestamp is stored as RFC 3339 and read back via CaptureTime.
type Metadata map[string]string

// Get returns the value for key, or "" when absent.
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// SetCaptureTime stores a capture timestamp under KeyCaptureTime.
func (m Metadata) SetCaptureTime(ts time.Time) {
	m[KeyCaptureTime] = ts.Format(time.RFC3339Nano)
}

// CaptureTime parses the stored capture timestamp, if any.
func (m Metadata) CaptureTime() (time.Time, bool) {
	raw := m.Get(KeyCaptureTime)
	if raw == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Extractor produces metadata for a file. Implementations must return an
// empty mapping, not an error, when the file simply carries no tags.
type Extractor interface {
	Extract(ctx context.Context, path string) (Metadata, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, path string) (Metadata, error)

func (f ExtractorFunc) Extract(ctx context.Context, path string) (Metadata, error) {
	return f(ctx, path)
}

// None is an extractor for flows that do not use metadata at all.
var None = ExtractorFunc(func(context.Context, string) (Metadata, error) {
	return Metadata{}, nil
})
