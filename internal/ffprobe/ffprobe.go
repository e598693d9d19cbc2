// Package ffprobe shells out to ffprobe to read container-level metadata
// from video files, most importantly the recording creation time.
package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Format Format `json:"format"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string            `json:"filename"`
	Duration   string            `json:"duration"`
	FormatName string            `json:"format_name"`
	Tags       map[string]string `json:"tags"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// creationTagKeys lists container tags that carry a recording timestamp, in
// preference order. Tag case varies by muxer, so lookups ignore case.
var creationTagKeys = []string{
	"creation_time",
	"date",
	"com.apple.quicktime.creationdate",
	"date_digitized",
}

var creationTimeLayouts = []string{
	"2006-01-02T15:04:05.000000Z",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05",
	"2006-01-02",
}

// CreationTime returns the recording timestamp from the container tags.
// Placeholder zero dates that some camera firmwares write are ignored.
func (r Result) CreationTime() (time.Time, bool) {
	if len(r.Format.Tags) == 0 {
		return time.Time{}, false
	}

	lowered := make(map[string]string, len(r.Format.Tags))
	for key, value := range r.Format.Tags {
		lowered[strings.ToLower(key)] = strings.TrimSpace(value)
	}

	for _, key := range creationTagKeys {
		value := lowered[key]
		if value == "" || strings.HasPrefix(value, "0000-00-00") {
			continue
		}
		for _, layout := range creationTimeLayouts {
			if ts, err := time.Parse(layout, value); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
