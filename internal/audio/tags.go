package audio

import (
	"github.com/bogem/id3v2"
)

// TagSummary holds the ID3 fields surfaced after copying an MP3 asset.
type TagSummary struct {
	Title  string
	Artist string
	Album  string
	Year   string
}

// Empty reports whether no useful fields were found in the file.
func (ts TagSummary) Empty() bool {
	return ts.Title == "" && ts.Artist == "" && ts.Album == "" && ts.Year == ""
}

// String renders the summary for progress lines, "Title — Artist" style.
func (ts TagSummary) String() string {
	switch {
	case ts.Title != "" && ts.Artist != "":
		return ts.Title + " / " + ts.Artist
	case ts.Title != "":
		return ts.Title
	case ts.Artist != "":
		return ts.Artist
	default:
		return "(no tags)"
	}
}

// TagReader reads ID3 metadata from copied MP3 assets so a run can report
// what audio actually landed in the round.
//
// Example:
//
//	reader := audio.NewTagReader()
//	summary, err := reader.ReadSummary("/output/round/tango-01.mp3")
//	if err == nil {
//	    fmt.Println(summary) // "El Choclo / Ángel D'Agostino"
//	}
type TagReader struct{}

// NewTagReader creates a new TagReader.
func NewTagReader() *TagReader {
	return &TagReader{}
}

// ReadSummary parses the ID3v2 tag of the file at path.
//
// A file without an ID3 header yields an empty summary, not an error;
// only unreadable files fail.
func (r *TagReader) ReadSummary(path string) (TagSummary, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TagSummary{}, err
	}
	defer tag.Close()

	return TagSummary{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
		Year:   tag.GetTextFrame("TYER").Text,
	}, nil
}
