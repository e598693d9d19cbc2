package classify

import (
	"path/filepath"
	"testing"
	"time"

	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

func TestMusicTargetFromTags(t *testing.T) {
	c := NewMusic()
	rec := &scan.FileRecord{Path: "/src/f0012345.mp3"}
	md := metadata.Metadata{
		metadata.KeyArtist: "Metallica",
		metadata.KeyAlbum:  "Ride the Lightning",
		metadata.KeyTitle:  "Fight Fire With Fire",
		metadata.KeyTrack:  "1",
	}

	components, reason := c.IntendedTarget(rec, md)
	if reason != "" {
		t.Fatalf("unexpected skip: %q", reason)
	}
	want := []string{"Metallica", "Ride the Lightning", "01 - Fight Fire With Fire.mp3"}
	assertComponents(t, components, want)
}

func TestMusicTargetUntagged(t *testing.T) {
	c := NewMusic()
	rec := &scan.FileRecord{Path: "/src/f0099.flac"}

	components, reason := c.IntendedTarget(rec, metadata.Metadata{})
	if reason != "" {
		t.Fatalf("unexpected skip: %q", reason)
	}
	want := []string{"Unknown Artist", "Unknown Album", "f0099.flac"}
	assertComponents(t, components, want)
}

func TestMusicIncludes(t *testing.T) {
	c := NewMusic()
	if !c.Includes("/src/a.MP3") {
		t.Fatal("mp3 not included")
	}
	if c.Includes("/src/a.jpg") {
		t.Fatal("jpg included by music flow")
	}
}

func TestPhotoTargetFromCaptureDate(t *testing.T) {
	c := NewPhoto()
	rec := &scan.FileRecord{Path: "/src/IMG_2417.jpg"}
	md := metadata.Metadata{}
	md.SetCaptureTime(time.Date(2014, 1, 5, 13, 22, 41, 0, time.UTC))

	components, reason := c.IntendedTarget(rec, md)
	if reason != "" {
		t.Fatalf("unexpected skip: %q", reason)
	}
	want := []string{"2014", "01-January", "20140105_132241_IMG_2417.jpg"}
	assertComponents(t, components, want)
}

func TestPhotoSkipsWithoutCaptureDate(t *testing.T) {
	c := NewPhoto()
	rec := &scan.FileRecord{Path: "/src/carved.jpg"}

	components, reason := c.IntendedTarget(rec, metadata.Metadata{})
	if components != nil {
		t.Fatalf("expected nil components, got %v", components)
	}
	if reason == "" {
		t.Fatal("expected a skip reason")
	}
}

func TestVideoFallsBackToModTime(t *testing.T) {
	c := NewVideo()
	rec := &scan.FileRecord{
		Path:    "/src/clip.mp4",
		ModTime: time.Date(2019, 11, 30, 8, 0, 0, 0, time.UTC),
	}

	components, reason := c.IntendedTarget(rec, metadata.Metadata{})
	if reason != "" {
		t.Fatalf("unexpected skip: %q", reason)
	}
	want := []string{"2019", "11-November", "20191130_080000_clip.mp4"}
	assertComponents(t, components, want)
}

func TestExtensionBuckets(t *testing.T) {
	c := NewExtension([]string{"jpg", "pdf"})
	if !c.Includes("/dump/recup_dir.1/f001.JPG") {
		t.Fatal("jpg not included")
	}
	if c.Includes("/dump/recup_dir.1/f001.mp3") {
		t.Fatal("mp3 included")
	}

	rec := &scan.FileRecord{Path: "/dump/recup_dir.1/f001.PDF"}
	components, reason := c.IntendedTarget(rec, nil)
	if reason != "" {
		t.Fatalf("unexpected skip: %q", reason)
	}
	assertComponents(t, components, []string{"pdf_files", "f001.PDF"})
}

func TestDedupOnlyKeepsInPlace(t *testing.T) {
	c := NewDedupOnly(nil)
	if !c.Includes("/anything/at.all") {
		t.Fatal("dedupe flow must include everything by default")
	}
	components, reason := c.IntendedTarget(&scan.FileRecord{Path: "/x"}, nil)
	if components != nil || reason != "" {
		t.Fatalf("expected in-place keep, got %v %q", components, reason)
	}

	filtered := NewDedupOnly([]string{"jpg"})
	if filtered.Includes("/x/a.png") {
		t.Fatal("extension filter ignored")
	}
}

func assertComponents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("components = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("components[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
	if filepath.Ext(got[len(got)-1]) == "" {
		t.Fatalf("final component %q lost its extension", got[len(got)-1])
	}
}
