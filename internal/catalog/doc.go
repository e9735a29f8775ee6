// Package catalog loads the song-metadata catalog and writes the drawn
// subset back out as JSON.
//
// The catalog is a JSON array of objects. Records pass through untouched;
// only presence and parseability are checked:
//
//	songs, err := catalog.Load("catalog/songs.json")
//	if errors.Is(err, catalog.ErrCatalogNotFound) { ... }
//
//	var fe *catalog.FormatError
//	if errors.As(err, &fe) { ... }
//
// Write emits 2-space-indented UTF-8 JSON with non-ASCII characters kept
// verbatim, overwriting any existing file.
package catalog
