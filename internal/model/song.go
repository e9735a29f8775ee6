package model

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Song represents one catalog record.
//
// A record is an opaque mapping of JSON keys to values; it is carried through
// the pipeline unmodified and re-serialized verbatim. The only contractually
// required key is "songId", used to derive the audio asset filename. Other
// keys (title, artist, orchestra, year, ...) are optional display metadata.
//
// Example:
//
//	song := model.Song{"songId": "milonga-07", "title": "La Trampera"}
//	song.ID()                  // "milonga-07"
//	song.AssetFileName(".wav") // "milonga-07.wav"
type Song map[string]any

// IDKey is the record key that correlates a song with its audio asset.
const IDKey = "songId"

// ID returns the song identifier as a string.
//
// The catalog contract allows songId to be a string or another JSON
// primitive; numeric identifiers are formatted without a decimal point when
// they hold integral values. Returns "" when the key is absent or null.
func (s Song) ID() string {
	switch v := s[IDKey].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// HasID reports whether the record carries a usable identifier.
func (s Song) HasID() bool {
	return s.ID() != ""
}

// Title returns the record's title field, falling back to the identifier
// when no title is present. Used for playlists and progress lines only.
func (s Song) Title() string {
	if t, ok := s["title"].(string); ok && t != "" {
		return t
	}
	return s.ID()
}

// Artist returns the record's artist field, or the orchestra field for
// catalogs that use that key instead. Empty when neither is present.
func (s Song) Artist() string {
	if a, ok := s["artist"].(string); ok && a != "" {
		return a
	}
	if o, ok := s["orchestra"].(string); ok && o != "" {
		return o
	}
	return ""
}

// AssetFileName returns the filename of the audio asset for this record,
// {songId}{ext}, with filesystem-hostile characters replaced.
func (s Song) AssetFileName(ext string) string {
	return sanitizeFileName(s.ID()) + ext
}

// AssetPath returns the full path of the record's audio asset inside dir.
func (s Song) AssetPath(dir, ext string) string {
	return filepath.Join(dir, s.AssetFileName(ext))
}

// ArtworkFileName returns the filename of the record's cover art, if the
// catalog ships one alongside the audio asset ({songId}.jpg or .png).
func (s Song) ArtworkFileName(ext string) string {
	return sanitizeFileName(s.ID()) + ext
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
