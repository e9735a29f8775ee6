// Package model defines the core data structures used throughout
// the NameThatTangoTune sampler.
//
// # Song
//
// Song is an opaque catalog record: a map of JSON keys to values carried
// through the pipeline unmodified. Only "songId" is required; it names the
// record's audio asset on disk:
//
//	song := model.Song{"songId": "vals-12", "title": "Desde el Alma"}
//	fmt.Println(song.AssetFileName(".wav")) // "vals-12.wav"
//
// Accessors like Title and Artist read optional display metadata with
// sensible fallbacks; they never mutate the record.
package model
