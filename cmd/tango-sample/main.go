package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ybotman/NameThatTangoTune/internal/config"
	"github.com/ybotman/NameThatTangoTune/internal/export"
)

func main() {
	// Command line flags
	var (
		catalogFlag  = flag.String("catalog", "", "Path to the catalog JSON file (overrides config)")
		assetsFlag   = flag.String("assets", "", "Directory holding {songId} audio files (overrides config)")
		outputFlag   = flag.String("output", "", "Output directory for the round (overrides config)")
		countFlag    = flag.Int("count", -1, "Number of songs to draw (overrides config)")
		seedFlag     = flag.Int64("seed", 0, "Random seed, 0 = non-reproducible")
		extFlag      = flag.String("ext", "", "Asset file extension, e.g. .wav or .mp3 (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		workersFlag  = flag.Int("workers", 0, "Concurrent asset copies (overrides config)")
		artworkFlag  = flag.Bool("artwork", false, "Copy cover art alongside assets")
		playlistFlag = flag.Bool("playlist", false, "Write a playlist for the round")
		tagsFlag     = flag.Bool("tags", false, "Read ID3 tag summaries from copied MP3 assets")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Draw the round without writing anything")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *catalogFlag != "" {
		settings.CatalogPath = *catalogFlag
	}
	if *assetsFlag != "" {
		settings.AssetsPath = *assetsFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *countFlag >= 0 {
		settings.SubsetSize = *countFlag
	}
	if *seedFlag != 0 {
		settings.SampleSeed = *seedFlag
	}
	if *extFlag != "" {
		settings.AssetExtension = *extFlag
		if !strings.HasPrefix(settings.AssetExtension, ".") {
			settings.AssetExtension = "." + settings.AssetExtension
		}
	}
	if *workersFlag > 0 {
		settings.MaxConcurrentCopies = *workersFlag
	}
	if *artworkFlag {
		settings.CopyArtwork = true
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *tagsFlag {
		settings.ReadTagSummaries = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := export.NewManager(settings, func(event export.ProgressEvent) {
		if event.Level == export.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case export.LevelError:
			prefix = "❌ "
		case export.LevelWarning:
			prefix = "⚠️  "
		case export.LevelSuccess:
			prefix = "✅ "
		case export.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎵 Name That Tango Tune — round sampler")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not writing]")
		for _, title := range manager.SubsetTitles() {
			fmt.Println("  ♪ " + title)
		}
		return
	}

	fmt.Println("\n📦 Materializing round...")
	fmt.Println()

	report, err := manager.Materialize(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nRun cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! %d/%d assets copied → %s\n", len(report.Copied), report.Drawn, settings.OutputPath)
	if len(report.Missing) > 0 {
		fmt.Printf("   %d asset(s) missing from %s\n", len(report.Missing), settings.AssetsPath)
	}
}
