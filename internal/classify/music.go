package classify

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// MusicExtensions are the audio formats the music flow owns.
var MusicExtensions = []string{"mp3", "flac", "ogg", "m4a", "wav", "ape"}

// Music places audio files under Artist/Album/NN - Title.ext, falling back
// to Unknown Artist / Unknown Album for untagged recoveries.
type Music struct {
	include func(string) bool
}

// NewMusic returns the music classifier.
func NewMusic() *Music {
	return &Music{include: scan.ExtensionSet(MusicExtensions)}
}

func (*Music) Name() string { return "music" }

func (m *Music) Includes(path string) bool { return m.include(path) }

func (m *Music) IntendedTarget(rec *scan.FileRecord, md metadata.Metadata) ([]string, string) {
	artist := md.Get(metadata.KeyArtist)
	if artist == "" {
		artist = "Unknown Artist"
	}
	album := md.Get(metadata.KeyAlbum)
	if album == "" {
		album = "Unknown Album"
	}

	ext := filepath.Ext(rec.Path)
	title := md.Get(metadata.KeyTitle)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(rec.Path), ext)
	}

	filename := title + ext
	if track := md.Get(metadata.KeyTrack); track != "" {
		if n, err := strconv.Atoi(track); err == nil && n > 0 {
			filename = fmt.Sprintf("%02d - %s%s", n, title, ext)
		}
	}

	return []string{artist, album, filename}, ""
}
