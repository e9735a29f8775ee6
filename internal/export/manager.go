package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ybotman/NameThatTangoTune/internal/audio"
	"github.com/ybotman/NameThatTangoTune/internal/catalog"
	"github.com/ybotman/NameThatTangoTune/internal/config"
	ioutils "github.com/ybotman/NameThatTangoTune/internal/io"
	"github.com/ybotman/NameThatTangoTune/internal/model"
	"github.com/ybotman/NameThatTangoTune/internal/sample"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Report is the structured result of a run, returned so callers can assert
// on outcomes instead of scraping progress text.
type Report struct {
	// Requested is the subset size asked for; Drawn is the size actually
	// written (equal unless the run failed before sampling).
	Requested int
	Drawn     int

	// Copied holds the identifiers whose assets landed in the output
	// directory; Missing holds one identifier per selected record whose
	// asset was absent from the source directory.
	Copied  []string
	Missing []string

	// SkippedNoID holds the positions (1-based, draw order) of selected
	// records that carry no usable songId.
	SkippedNoID []int

	// ArtworkCopied counts cover-art files materialized alongside assets.
	ArtworkCopied int

	// SubsetPath is where the subset JSON was written.
	SubsetPath string
}

// Manager coordinates a sampling run: load the catalog, draw the subset,
// write the subset JSON, then materialize the matching audio assets.
type Manager struct {
	settings *config.Settings
	sampler  *sample.Sampler
	playlist *audio.PlaylistCreator
	tags     *audio.TagReader
	images   *ioutils.ImageService

	subset []model.Song

	totalAssets     int32
	processedAssets int32

	report Report

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
//
// onProgress receives human-oriented progress events; it may be nil.
// Machine-readable results come back in the Report.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		sampler:    sample.FromSeed(settings.SampleSeed),
		playlist:   audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.PlaylistFormat), settings.M3UExtended),
		tags:       audio.NewTagReader(),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Initialize loads the catalog and draws the subset. Nothing is written;
// a failure here leaves the filesystem untouched (the output directory is
// not created).
func (m *Manager) Initialize(ctx context.Context) error {
	songs, err := catalog.Load(m.settings.CatalogPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error loading catalog: %v", err), Level: LevelError})
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded catalog: %d songs", len(songs)), Level: LevelInfo})

	subset, err := m.sampler.Pick(songs, m.settings.SubsetSize)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error sampling: %v", err), Level: LevelError})
		return err
	}

	m.subset = subset
	m.totalAssets = int32(len(subset))
	m.report = Report{
		Requested:  m.settings.SubsetSize,
		Drawn:      len(subset),
		SubsetPath: m.settings.SubsetPath(),
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Drew %d of %d songs", len(subset), len(songs)), Level: LevelInfo})
	return nil
}

// Subset returns the drawn records in draw order. Valid after Initialize.
func (m *Manager) Subset() []model.Song {
	return m.subset
}

// SubsetTitles returns display lines for the drawn records.
func (m *Manager) SubsetTitles() []string {
	titles := make([]string, len(m.subset))
	for i, song := range m.subset {
		if artist := song.Artist(); artist != "" {
			titles[i] = fmt.Sprintf("%s (%s)", song.Title(), artist)
		} else {
			titles[i] = song.Title()
		}
	}
	return titles
}

// Progress returns the number of assets handled so far and the total.
func (m *Manager) Progress() (processed, total int32) {
	return atomic.LoadInt32(&m.processedAssets), m.totalAssets
}

// Materialize writes the subset JSON and copies the matching assets.
//
// The subset file is fully written before any copy starts, so its record
// order and content never depend on copy concurrency. Per-asset misses are
// warnings; only the subset write itself is fatal.
func (m *Manager) Materialize(ctx context.Context) (Report, error) {
	if err := ioutils.EnsureDir(m.settings.OutputPath); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating output directory: %v", err), Level: LevelError})
		return m.report, err
	}

	if err := catalog.Write(m.report.SubsetPath, m.subset); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing subset: %v", err), Level: LevelError})
		return m.report, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote subset: %s", m.report.SubsetPath), Level: LevelInfo})

	if err := m.copyAssets(ctx); err != nil {
		return m.report, err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylist(ctx)
	}

	if len(m.report.Missing) == 0 && len(m.report.SkippedNoID) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Round complete: %d assets copied", len(m.report.Copied)), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Round complete: %d copied, %d missing", len(m.report.Copied), len(m.report.Missing)), Level: LevelWarning})
	}

	return m.report, nil
}

// Run executes the whole pipeline: Initialize then Materialize.
func (m *Manager) Run(ctx context.Context) (Report, error) {
	if err := m.Initialize(ctx); err != nil {
		return m.report, err
	}
	return m.Materialize(ctx)
}

func (m *Manager) copyAssets(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	limit := m.settings.MaxConcurrentCopies
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, song := range m.subset {
		i, song := i, song // capture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.copyAsset(ctx, i, song)
			atomic.AddInt32(&m.processedAssets, 1)
			return nil
		})
	}

	return g.Wait()
}

// copyAsset handles one selected record. Misses never abort the run.
func (m *Manager) copyAsset(ctx context.Context, pos int, song model.Song) {
	if !song.HasID() {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Record %d has no songId, skipping", pos+1), Level: LevelWarning})
		m.mu.Lock()
		m.report.SkippedNoID = append(m.report.SkippedNoID, pos+1)
		m.mu.Unlock()
		return
	}

	src := song.AssetPath(m.settings.AssetsPath, m.settings.AssetExtension)
	dst := song.AssetPath(m.settings.OutputPath, m.settings.AssetExtension)

	if _, err := os.Stat(src); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Missing asset: %s", src), Level: LevelWarning})
		m.mu.Lock()
		m.report.Missing = append(m.report.Missing, song.ID())
		m.mu.Unlock()
		return
	}

	if err := ioutils.CopyFile(ctx, src, dst); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error copying %s: %v", src, err), Level: LevelError})
		m.mu.Lock()
		m.report.Missing = append(m.report.Missing, song.ID())
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.report.Copied = append(m.report.Copied, song.ID())
	m.mu.Unlock()

	msg := fmt.Sprintf("Copied: %s", filepath.Base(dst))
	if m.settings.ReadTagSummaries && strings.EqualFold(m.settings.AssetExtension, ".mp3") {
		if summary, err := m.tags.ReadSummary(dst); err == nil && !summary.Empty() {
			msg = fmt.Sprintf("Copied: %s [%s]", filepath.Base(dst), summary)
		}
	}
	m.progress(ProgressEvent{Message: msg, Level: LevelVerbose})

	if m.settings.CopyArtwork {
		m.copyArtwork(ctx, song)
	}
}

// copyArtwork materializes {songId}.jpg/.png next to the asset when the
// source directory ships one. Absence is not a warning.
func (m *Manager) copyArtwork(ctx context.Context, song model.Song) {
	for _, ext := range []string{".jpg", ".png"} {
		src := filepath.Join(m.settings.AssetsPath, song.ArtworkFileName(ext))
		if _, err := os.Stat(src); err != nil {
			continue
		}

		outExt := ext
		if m.settings.ConvertArtworkToJPG {
			outExt = ".jpg"
		}
		dst := filepath.Join(m.settings.OutputPath, song.ArtworkFileName(outExt))

		if m.settings.ArtworkResize || (m.settings.ConvertArtworkToJPG && ext != ".jpg") {
			if err := m.processArtwork(ctx, src, dst); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing artwork %s: %v", src, err), Level: LevelWarning})
				return
			}
		} else if err := ioutils.CopyFile(ctx, src, dst); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error copying artwork %s: %v", src, err), Level: LevelWarning})
			return
		}

		m.mu.Lock()
		m.report.ArtworkCopied++
		m.mu.Unlock()
		m.progress(ProgressEvent{Message: fmt.Sprintf("Copied artwork: %s", filepath.Base(dst)), Level: LevelVerbose})
		return
	}
}

func (m *Manager) processArtwork(ctx context.Context, src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if m.settings.ArtworkResize {
		data, err = m.images.ResizeImage(ctx, data, m.settings.ArtworkMaxSize, m.settings.ArtworkMaxSize)
	} else {
		data, err = m.images.ConvertToJPEG(ctx, data)
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(ctx, dst, data)
}

func (m *Manager) writePlaylist(ctx context.Context) {
	format := audio.ParsePlaylistFormat(m.settings.PlaylistFormat)
	stem := strings.TrimSuffix(m.settings.SubsetFileName, filepath.Ext(m.settings.SubsetFileName))
	path := filepath.Join(m.settings.OutputPath, stem+format.Extension())

	content := m.playlist.Create(m.subset, m.settings.AssetExtension)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote playlist: %s", path), Level: LevelSuccess})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
