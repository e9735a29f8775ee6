package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
//
// The original tool hard-coded these as constants; they are surfaced here so
// runs can target temporary directories and fix a sample seed in tests.
type Settings struct {
	// Pipeline paths
	CatalogPath    string `json:"catalog_path"`
	AssetsPath     string `json:"assets_path"`
	OutputPath     string `json:"output_path"`
	SubsetFileName string `json:"subset_file_name"`

	// Sampling
	SubsetSize int   `json:"subset_size"`
	SampleSeed int64 `json:"sample_seed"` // 0 = time-seeded, non-reproducible

	// Asset copying
	AssetExtension      string `json:"asset_extension"`
	MaxConcurrentCopies int    `json:"max_concurrent_copies"`

	// Cover art settings
	CopyArtwork         bool `json:"copy_artwork"`
	ArtworkResize       bool `json:"artwork_resize"`
	ArtworkMaxSize      int  `json:"artwork_max_size"`
	ConvertArtworkToJPG bool `json:"convert_artwork_to_jpg"`

	// Reporting extras
	ReadTagSummaries bool   `json:"read_tag_summaries"`
	CreatePlaylist   bool   `json:"create_playlist"`
	PlaylistFormat   string `json:"playlist_format"` // m3u, pls
	M3UExtended      bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPath:    filepath.Join("catalog", "songs.json"),
		AssetsPath:     filepath.Join("assets", "audio"),
		OutputPath:     filepath.Join("output", "round"),
		SubsetFileName: "subset.json",

		SubsetSize: 100,
		SampleSeed: 0,

		AssetExtension:      ".wav",
		MaxConcurrentCopies: 1,

		CopyArtwork:         false,
		ArtworkResize:       false,
		ArtworkMaxSize:      1000,
		ConvertArtworkToJPG: false,

		ReadTagSummaries: false,
		CreatePlaylist:   false,
		PlaylistFormat:   "m3u",
		M3UExtended:      true,
	}
}

// SubsetPath returns the full path of the subset JSON file.
func (s *Settings) SubsetPath() string {
	return filepath.Join(s.OutputPath, s.SubsetFileName)
}

// Load reads settings from a JSON file.
// A missing file yields the defaults rather than an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
