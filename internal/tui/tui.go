// Package tui provides a Bubble Tea terminal user interface for the sampler.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ybotman/NameThatTangoTune/internal/config"
	"github.com/ybotman/NameThatTangoTune/internal/export"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	songStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateSampling
	StateCopying
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	preview   []string
	report    export.Report
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Pipeline manager reference
	manager *export.Manager

	// Copy progress
	processed int32
	total     int32

	// Options
	artwork  bool
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = settings.CatalogPath
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when a pipeline progress event arrives.
	ProgressMsg struct {
		Event export.ProgressEvent
	}

	// SampleDoneMsg is sent when the catalog is loaded and the draw made.
	SampleDoneMsg struct {
		Preview []string
		Manager *export.Manager
		Err     error
	}

	// RoundDoneMsg is sent when materialization completes.
	RoundDoneMsg struct {
		Report export.Report
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateSampling || m.state == StateCopying {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateSampling
				return m, tea.Batch(m.startSampling(), m.spinner.Tick)
			}

		case "a":
			if m.state == StateInput {
				m.artwork = !m.artwork
			}

		case "p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a fresh draw
				m.state = StateInput
				m.logs = nil
				m.preview = nil
				m.err = nil
				m.report = export.Report{}
				m.processed = 0
				m.total = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == export.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case SampleDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.preview = msg.Preview
			m.manager = msg.Manager
			m.state = StateCopying
			cmds = append(cmds, m.startMaterialize(), m.tickProgress())
		}

	case RoundDoneMsg:
		m.report = msg.Report
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateCopying {
			processed, total := m.manager.Progress()
			m.processed = processed
			m.total = total

			var percent float64
			if total > 0 {
				percent = float64(processed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Name That Tango Tune"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Draw a random round from the song catalog"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateSampling:
		b.WriteString(m.viewSampling())
	case StateCopying:
		b.WriteString(m.viewCopying())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Catalog path (empty for default):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	artworkCheck := "[ ]"
	if m.artwork {
		artworkCheck = "[×]"
	}
	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Copy cover art (a)\n", artworkCheck))
	b.WriteString(fmt.Sprintf("  %s Write playlist (p)\n", playlistCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Round size: %d • Output: %s", m.settings.SubsetSize, m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewSampling() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading catalog and drawing the round..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewCopying() string {
	var b strings.Builder

	// Preview the first few drawn songs
	if len(m.preview) > 0 {
		shown := m.preview
		if len(shown) > 5 {
			shown = shown[:5]
		}
		b.WriteString(successStyle.Render(fmt.Sprintf("Drew %d song(s):", len(m.preview))))
		b.WriteString("\n")
		for _, title := range shown {
			b.WriteString(songStyle.Render(fmt.Sprintf("  ♪ %s", title)))
			b.WriteString("\n")
		}
		if len(m.preview) > len(shown) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.preview)-len(shown))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Assets: %d/%d", m.processed, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Round Ready!\n\n"+
			"Songs drawn: %d\n"+
			"Assets copied: %d\n"+
			"Missing assets: %d\n"+
			"Subset: %s",
		m.report.Drawn,
		len(m.report.Copied),
		len(m.report.Missing),
		m.report.SubsetPath,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			style = errorStyle
			prefix = "✗"
		case export.LevelWarning:
			style = warningStyle
			prefix = "!"
		case export.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case export.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: draw • a: artwork • p: playlist • v: verbose • esc: quit"
	case StateSampling, StateCopying:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new round • q: quit"
	}
	return ""
}

// startSampling loads the catalog, draws the subset, and creates the manager.
func (m *Model) startSampling() tea.Cmd {
	return func() tea.Msg {
		settings := *m.settings
		if path := strings.TrimSpace(m.textInput.Value()); path != "" {
			settings.CatalogPath = path
		}
		settings.CopyArtwork = m.artwork
		settings.CreatePlaylist = m.playlist

		// Progress events are collected but not sent directly;
		// the TUI polls copy progress via TickMsg.
		manager := export.NewManager(&settings, nil)

		if err := manager.Initialize(m.ctx); err != nil {
			return SampleDoneMsg{Err: err}
		}

		return SampleDoneMsg{
			Preview: manager.SubsetTitles(),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startMaterialize writes the subset and copies assets in the background.
func (m *Model) startMaterialize() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return RoundDoneMsg{Err: fmt.Errorf("no manager")}
		}

		report, err := m.manager.Materialize(m.ctx)

		return RoundDoneMsg{
			Report: report,
			Err:    err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
