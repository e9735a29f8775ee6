// Package audio provides audio-adjacent services for a drawn round:
// ID3 tag reading and playlist generation.
//
// # Tag Summaries
//
// When assets are MP3s, TagReader surfaces what was actually copied:
//
//	reader := audio.NewTagReader()
//	summary, err := reader.ReadSummary("/output/round/tango-01.mp3")
//
// # Playlist Generation
//
// Generate a playlist of the round's assets:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.Create(subset, ".wav")
//	os.WriteFile("round.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
