package ffprobe

import (
	"encoding/json"
	"testing"
	"time"
)

func decode(t *testing.T, payload string) Result {
	t.Helper()
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatal(err)
	}
	return result
}

func TestCreationTimeFromQuicktimeTag(t *testing.T) {
	result := decode(t, `{
        "format": {
            "filename": "clip.mov",
            "format_name": "mov,mp4,m4a",
            "tags": {
                "com.apple.quicktime.creationdate": "2021-06-14T09:30:00Z",
                "major_brand": "qt"
            }
        }
    }`)

	ts, ok := result.CreationTime()
	if !ok {
		t.Fatal("expected creation time")
	}
	want := time.Date(2021, 6, 14, 9, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("ts = %v, want %v", ts, want)
	}
}

func TestCreationTimePrefersCreationTimeTag(t *testing.T) {
	result := decode(t, `{
        "format": {
            "tags": {
                "DATE": "2019-01-01",
                "creation_time": "2020-02-02T10:00:00.000000Z"
            }
        }
    }`)

	ts, ok := result.CreationTime()
	if !ok {
		t.Fatal("expected creation time")
	}
	if ts.Year() != 2020 {
		t.Fatalf("wrong tag won: %v", ts)
	}
}

func TestCreationTimeIgnoresZeroDate(t *testing.T) {
	result := decode(t, `{
        "format": {
            "tags": {"creation_time": "0000-00-00T00:00:00.000000Z"}
        }
    }`)
	if _, ok := result.CreationTime(); ok {
		t.Fatal("placeholder zero date accepted")
	}
}

func TestCreationTimeBareDate(t *testing.T) {
	result := decode(t, `{"format": {"tags": {"date": "2018-07-22"}}}`)
	ts, ok := result.CreationTime()
	if !ok || ts.Year() != 2018 || ts.Month() != time.July {
		t.Fatalf("ts = %v ok = %v", ts, ok)
	}
}

func TestCreationTimeNoTags(t *testing.T) {
	result := decode(t, `{"format": {"filename": "clip.avi"}}`)
	if _, ok := result.CreationTime(); ok {
		t.Fatal("expected no creation time")
	}
}
