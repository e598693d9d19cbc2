package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCaptureTimeRoundTrip(t *testing.T) {
	md := Metadata{}
	want := time.Date(2015, 3, 9, 18, 45, 12, 0, time.UTC)
	md.SetCaptureTime(want)

	got, ok := md.CaptureTime()
	if !ok {
		t.Fatal("capture time not stored")
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCaptureTimeAbsent(t *testing.T) {
	var md Metadata
	if _, ok := md.CaptureTime(); ok {
		t.Fatal("nil metadata reported a capture time")
	}
	if md.Get(KeyArtist) != "" {
		t.Fatal("nil metadata returned a value")
	}
}

func TestCaptureTimeMalformed(t *testing.T) {
	md := Metadata{KeyCaptureTime: "not a timestamp"}
	if _, ok := md.CaptureTime(); ok {
		t.Fatal("malformed timestamp accepted")
	}
}

func TestMusicExtractorUntaggedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noise.mp3")
	if err := os.WriteFile(path, []byte("recovered garbage, no tag header"), 0o644); err != nil {
		t.Fatal(err)
	}

	md, err := MusicExtractor{}.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("untagged file must not error: %v", err)
	}
	if len(md) != 0 {
		t.Fatalf("expected empty metadata, got %v", md)
	}
}

func TestMusicExtractorMissingFile(t *testing.T) {
	_, err := MusicExtractor{}.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.mp3"))
	if err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestPhotoExtractorNoExif(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carved.jpg")
	if err := os.WriteFile(path, []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x04, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	md, err := PhotoExtractor{}.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("exif-less file must not error: %v", err)
	}
	if _, ok := md.CaptureTime(); ok {
		t.Fatal("capture time invented for exif-less file")
	}
}

func TestPhotoExtractorMissingFile(t *testing.T) {
	_, err := PhotoExtractor{}.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.jpg"))
	if err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestNoneExtractor(t *testing.T) {
	md, err := None.Extract(context.Background(), "/anything")
	if err != nil {
		t.Fatal(err)
	}
	if len(md) != 0 {
		t.Fatalf("expected empty metadata, got %v", md)
	}
}
