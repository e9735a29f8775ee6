// Package ioutils provides file system utilities for the sampler.
//
// This package contains functions for:
//   - Asset file copying
//   - File writing
//   - Filename sanitization
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"io"
	"os"
	"regexp"
	"strings"
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does, so re-running a round overwrites any asset
// copied by a previous run. The source file must exist and be readable.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - src: Source file path (must exist)
//   - dst: Destination file path (will be created/overwritten)
//
// Returns an error if:
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
//
// Example:
//
//	err := CopyFile(ctx, "/assets/audio/tango-01.wav", "/output/round/tango-01.wav")
func CopyFile(ctx context.Context, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/output/round/round.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// Catalog identifiers become asset filenames, so anything a catalog author
// typed has to survive as a valid name across operating systems, Windows
// being the most restrictive.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("tanda: 1/4")   // Returns "tanda_ 1_4"
//	SanitizeFileName("corte...")     // Returns "corte"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned and nothing in it
// is touched.
//
// Example:
//
//	err := EnsureDir("/output/round")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
