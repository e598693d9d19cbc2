package metadata

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// MusicExtractor reads artist/album/title/track from audio tags (ID3v1/v2,
// Vorbis comments, MP4 atoms, FLAC).
type MusicExtractor struct{}

func (MusicExtractor) Extract(_ context.Context, path string) (Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	tags, err := tag.ReadFrom(file)
	if err != nil {
		// Recovered audio frequently has stripped or damaged tag blocks;
		// that degrades to an empty mapping, not a failure.
		return Metadata{}, nil
	}

	md := Metadata{}
	artist := strings.TrimSpace(tags.Artist())
	if artist == "" {
		artist = strings.TrimSpace(tags.AlbumArtist())
	}
	if artist != "" {
		md[KeyArtist] = artist
	}
	if album := strings.TrimSpace(tags.Album()); album != "" {
		md[KeyAlbum] = album
	}
	if title := strings.TrimSpace(tags.Title()); title != "" {
		md[KeyTitle] = title
	}
	if genre := strings.TrimSpace(tags.Genre()); genre != "" {
		md[KeyGenre] = genre
	}
	if track, _ := tags.Track(); track > 0 {
		md[KeyTrack] = strconv.Itoa(track)
	}
	if year := tags.Year(); year > 0 {
		md[KeyYear] = strconv.Itoa(year)
	}
	return md, nil
}
