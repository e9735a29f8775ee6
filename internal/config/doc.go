// Package config provides configuration management for the sampler.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get the original tool's behavior:
//
//	settings := config.DefaultSettings()
//	// catalog/songs.json → 100 songs → output/round, .wav assets,
//	// sequential copying, unseeded draws
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.SubsetSize = 20
//	err := settings.Save("/path/to/config.json")
package config
