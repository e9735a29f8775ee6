package audio

import (
	"fmt"
	"strings"

	"github.com/ybotman/NameThatTangoTune/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title/artist info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// ParsePlaylistFormat maps a settings string ("m3u", "pls") to a
// PlaylistFormat, defaulting to M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if s == "pls" {
		return FormatPLS
	}
	return FormatM3U
}

// PlaylistCreator generates a playlist for a drawn round.
//
// The playlist lists the round's asset filenames relative to the output
// directory, so the file plays in place once the round is materialized:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.Create(subset, ".wav")
//	os.WriteFile(filepath.Join(outDir, "round.m3u"), []byte(content), 0644)
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with title/artist info
}

// NewPlaylistCreator creates a new PlaylistCreator.
// extended applies to M3U only and is ignored for other formats.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Create generates playlist content for the drawn songs, in draw order.
// ext is the asset extension ({songId}{ext} entries).
func (p *PlaylistCreator) Create(songs []model.Song, ext string) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(songs, ext)
	default:
		return p.createM3U(songs, ext)
	}
}

// createM3U generates an M3U playlist.
//
// Standard M3U format is one filename per line. Extended M3U
// (when extended=true) adds a header and per-entry info lines:
//
//	#EXTM3U
//	#EXTINF:-1,Artist - Title
//	tango-01.wav
//
// Catalog records carry no duration, so EXTINF uses -1 (unknown).
func (p *PlaylistCreator) createM3U(songs []model.Song, ext string) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, song := range songs {
		if p.extended {
			sb.WriteString("#EXTINF:-1," + playlistTitle(song) + "\n")
		}
		sb.WriteString(song.AssetFileName(ext) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=tango-01.wav
//	Title1=El Choclo
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(songs []model.Song, ext string) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, song := range songs {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, song.AssetFileName(ext)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, playlistTitle(song)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(songs)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// playlistTitle builds the display line for a record, "Artist - Title" when
// an artist is known, just the title otherwise.
func playlistTitle(song model.Song) string {
	if artist := song.Artist(); artist != "" {
		return artist + " - " + song.Title()
	}
	return song.Title()
}
