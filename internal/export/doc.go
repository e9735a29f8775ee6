// Package export orchestrates a sampling run: load the catalog, draw a
// random subset, write the subset JSON, and materialize the matching audio
// assets into the output directory.
//
// # Manager
//
// The Manager runs the pipeline in a fixed order:
//
//  1. Load the catalog (fatal on missing/malformed file; nothing written)
//  2. Draw the subset (fatal when the catalog is too small; nothing written)
//  3. Create the output directory and write the subset JSON (fatal on failure)
//  4. Copy assets — per-item misses are warnings, the run always completes
//
// # Basic Usage
//
//	manager := export.NewManager(settings, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	report, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d copied, %d missing\n", len(report.Copied), len(report.Missing))
//
// # Concurrency
//
// Asset copies run under an errgroup bounded by
// settings.MaxConcurrentCopies (default 1, the original sequential
// behavior). The subset file is fully written before any copy starts, so
// its content and order never depend on copy timing; warning order may vary.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Machine-readable results (copied/missing identifiers) come back in the
// Report rather than in progress text.
package export
