package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ybotman/NameThatTangoTune/internal/catalog"
	"github.com/ybotman/NameThatTangoTune/internal/config"
	"github.com/ybotman/NameThatTangoTune/internal/sample"
)

func TestManager_Run_FullRound(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 3
	writeCatalog(t, settings, `[{"songId":"a"},{"songId":"b"},{"songId":"c"},{"songId":"d"}]`)
	writeAsset(t, settings, "a.wav")
	writeAsset(t, settings, "b.wav")
	writeAsset(t, settings, "c.wav")
	writeAsset(t, settings, "d.wav")

	report, err := NewManager(settings, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Drawn != 3 {
		t.Errorf("Drawn = %d, want 3", report.Drawn)
	}
	if len(report.Copied) != 3 {
		t.Errorf("Copied = %v, want 3 entries", report.Copied)
	}
	if len(report.Missing) != 0 {
		t.Errorf("Missing = %v, want none", report.Missing)
	}

	subset, err := catalog.Load(settings.SubsetPath())
	if err != nil {
		t.Fatalf("subset file unreadable: %v", err)
	}
	if len(subset) != 3 {
		t.Errorf("subset file holds %d records, want 3", len(subset))
	}
	for _, id := range report.Copied {
		if _, err := os.Stat(filepath.Join(settings.OutputPath, id+".wav")); err != nil {
			t.Errorf("asset %s.wav not materialized: %v", id, err)
		}
	}
}

func TestManager_Run_MissingAssetsAreWarnings(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 2
	writeCatalog(t, settings, `[{"songId":"a"},{"songId":"b"},{"songId":"c"}]`)
	writeAsset(t, settings, "a.wav")

	var warnings int
	manager := NewManager(settings, func(event ProgressEvent) {
		if event.Level == LevelWarning {
			warnings++
		}
	})

	report, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Exactly as many misses as selected identifiers without a .wav.
	wantMissing := 0
	for _, song := range manager.Subset() {
		if song.ID() != "a" {
			wantMissing++
		}
	}
	if len(report.Missing) != wantMissing {
		t.Errorf("Missing = %v, want %d entries", report.Missing, wantMissing)
	}
	if len(report.Copied)+len(report.Missing) != 2 {
		t.Errorf("Copied+Missing = %d+%d, want 2 total", len(report.Copied), len(report.Missing))
	}

	// One warning per miss plus the final summary warning.
	if wantMissing > 0 && warnings != wantMissing+1 {
		t.Errorf("emitted %d warnings, want %d", warnings, wantMissing+1)
	}

	subset, err := catalog.Load(settings.SubsetPath())
	if err != nil || len(subset) != 2 {
		t.Errorf("subset file should hold 2 records regardless of misses: %v, %v", subset, err)
	}
}

func TestManager_Run_SubsetMatchesMemory(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 5
	settings.SampleSeed = 42
	writeCatalog(t, settings, `[{"songId":"a","title":"Á"},{"songId":"b"},{"songId":"c"},{"songId":"d"},{"songId":"e"},{"songId":"f"}]`)

	manager := NewManager(settings, nil)
	if _, err := manager.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	reloaded, err := catalog.Load(settings.SubsetPath())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(reloaded, manager.Subset()) {
		t.Errorf("written subset differs from in-memory subset:\n got %v\nwant %v", reloaded, manager.Subset())
	}
}

func TestManager_Run_ZeroSubset(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 0
	writeCatalog(t, settings, `[{"songId":"a"}]`)

	report, err := NewManager(settings, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Drawn != 0 || len(report.Copied) != 0 {
		t.Errorf("zero draw should copy nothing, got %+v", report)
	}

	data, err := os.ReadFile(settings.SubsetPath())
	if err != nil {
		t.Fatalf("subset file missing: %v", err)
	}
	if got := string(data); got != "[]\n" {
		t.Errorf("subset file = %q, want empty array", got)
	}

	entries, _ := os.ReadDir(settings.OutputPath)
	if len(entries) != 1 {
		t.Errorf("output dir should hold only the subset file, got %d entries", len(entries))
	}
}

func TestManager_Run_InsufficientCatalog(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 10
	writeCatalog(t, settings, `[{"songId":"a"},{"songId":"b"}]`)

	_, err := NewManager(settings, nil).Run(context.Background())
	var ide *sample.InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("Run() error = %v, want *InsufficientDataError", err)
	}

	if _, statErr := os.Stat(settings.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output directory should not be created when sampling fails")
	}
}

func TestManager_Run_MalformedCatalog(t *testing.T) {
	settings := createTestSettings(t)
	writeCatalog(t, settings, `[{"songId":"a"},`)

	_, err := NewManager(settings, nil).Run(context.Background())
	var fe *catalog.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Run() error = %v, want *FormatError", err)
	}

	if _, statErr := os.Stat(settings.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output directory should not be created when loading fails")
	}
}

func TestManager_Run_MissingCatalog(t *testing.T) {
	settings := createTestSettings(t)

	_, err := NewManager(settings, nil).Run(context.Background())
	if !errors.Is(err, catalog.ErrCatalogNotFound) {
		t.Errorf("Run() error = %v, want ErrCatalogNotFound", err)
	}
}

func TestManager_Run_RerunPreservesUnrelatedFiles(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 1
	writeCatalog(t, settings, `[{"songId":"a"}]`)
	writeAsset(t, settings, "a.wav")

	if _, err := NewManager(settings, nil).Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	marker := filepath.Join(settings.OutputPath, "unrelated.txt")
	if err := os.WriteFile(marker, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewManager(settings, nil).Run(context.Background()); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "keep me" {
		t.Errorf("unrelated file should survive a re-run: %q, %v", data, err)
	}
}

func TestManager_Run_SkipsRecordsWithoutID(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 2
	writeCatalog(t, settings, `[{"title":"no id"},{"songId":"b"}]`)
	writeAsset(t, settings, "b.wav")

	report, err := NewManager(settings, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.SkippedNoID) != 1 {
		t.Errorf("SkippedNoID = %v, want one entry", report.SkippedNoID)
	}
	if len(report.Copied) != 1 || report.Copied[0] != "b" {
		t.Errorf("Copied = %v, want [b]", report.Copied)
	}
}

func TestManager_Run_ConcurrentCopies(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 20
	settings.MaxConcurrentCopies = 4
	settings.SampleSeed = 7

	records := `[`
	for i := 0; i < 20; i++ {
		if i > 0 {
			records += ","
		}
		id := string(rune('a' + i))
		records += `{"songId":"` + id + `"}`
		writeAsset(t, settings, id+".wav")
	}
	records += `]`
	writeCatalog(t, settings, records)

	manager := NewManager(settings, nil)
	report, err := manager.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Copied) != 20 {
		t.Errorf("Copied = %d, want 20", len(report.Copied))
	}

	// Subset order must be independent of copy concurrency.
	reloaded, err := catalog.Load(settings.SubsetPath())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reloaded, manager.Subset()) {
		t.Error("subset file order should match the draw, not copy completion")
	}

	processed, total := manager.Progress()
	if processed != 20 || total != 20 {
		t.Errorf("Progress() = %d/%d, want 20/20", processed, total)
	}
}

func TestManager_Run_Playlist(t *testing.T) {
	settings := createTestSettings(t)
	settings.SubsetSize = 1
	settings.CreatePlaylist = true
	writeCatalog(t, settings, `[{"songId":"a","title":"El Choclo"}]`)
	writeAsset(t, settings, "a.wav")

	if _, err := NewManager(settings, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(settings.OutputPath, "subset.m3u"))
	if err != nil {
		t.Fatalf("playlist not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "a.wav") {
		t.Errorf("playlist should list the round's assets, got %q", content)
	}
}

func createTestSettings(t *testing.T) *config.Settings {
	t.Helper()
	dir := t.TempDir()

	settings := config.DefaultSettings()
	settings.CatalogPath = filepath.Join(dir, "catalog", "songs.json")
	settings.AssetsPath = filepath.Join(dir, "assets")
	settings.OutputPath = filepath.Join(dir, "output", "round")
	settings.SubsetSize = 1
	settings.SampleSeed = 1

	if err := os.MkdirAll(settings.AssetsPath, 0755); err != nil {
		t.Fatal(err)
	}
	return settings
}

func writeCatalog(t *testing.T, settings *config.Settings, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(settings.CatalogPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settings.CatalogPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeAsset(t *testing.T, settings *config.Settings, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(settings.AssetsPath, name), []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
}
