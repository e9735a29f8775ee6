// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Asset copying and file writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Cover art resizing and format conversion
//
// # File Operations
//
//	// Copy an asset into the round
//	err := ioutils.CopyFile(ctx, "/assets/audio/a.wav", "/output/round/a.wav")
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/output/round")
//
// # Filename Sanitization
//
// Use SanitizeFileName to make catalog identifiers filesystem-safe:
//
//	safe := ioutils.SanitizeFileName("tanda: 1/4") // Returns "tanda_ 1_4"
//
// # Image Processing
//
// The ImageService handles cover art shipped alongside audio assets:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, coverData, 500, 500)
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
