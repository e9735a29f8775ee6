package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ybotman/NameThatTangoTune/internal/model"
)

// ErrCatalogNotFound is returned when the catalog file does not exist.
var ErrCatalogNotFound = errors.New("catalog file not found")

// FormatError indicates the catalog file exists but is not a valid JSON
// array of records. It wraps the underlying parse diagnostic.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog %s is not a valid JSON array: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError indicates the subset file could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write subset %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Load reads a catalog file and parses it as a JSON array of song records.
//
// Records are returned exactly as parsed, in file order; no schema
// validation or type coercion is performed. A missing file yields an error
// wrapping ErrCatalogNotFound; malformed content yields a *FormatError.
func Load(path string) ([]model.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, err
	}

	var songs []model.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	return songs, nil
}

// Write serializes songs to path as an indented JSON array.
//
// Output is UTF-8 with 2-space indentation; non-ASCII characters are kept
// verbatim rather than escaped. Any existing file at path is overwritten.
func Write(path string, songs []model.Song) error {
	if songs == nil {
		songs = []model.Song{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(songs); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
