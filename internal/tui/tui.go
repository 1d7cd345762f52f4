// Package tui provides a Bubble Tea terminal user interface for zanmei-downloader.
package tui

import (
	"context"
	"fmt"
	"strings"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chhsiching/zanmei-downloader/internal/config"
	"github.com/chhsiching/zanmei-downloader/internal/download"
	xhttp "github.com/chhsiching/zanmei-downloader/internal/http"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
	"github.com/chhsiching/zanmei-downloader/internal/model"
	"github.com/chhsiching/zanmei-downloader/internal/progress"
	"github.com/chhsiching/zanmei-downloader/internal/site"
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

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateResolving
	StateDownloading
	StateComplete
	StateError
)

// LogEntry is one line in the scrolling result log. Status carries the
// wire status of the song it reports ("success", "failed", "skipped").
type LogEntry struct {
	Message string
	Status  string
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progressbar.Model
	settings  *config.Settings
	registry  *site.Registry
	client    *xhttp.Client
	log       *logger.Logger

	// Batch wiring. The batch runs inside a command goroutine and
	// reports through events; ctx cancels it between attempts.
	ctx    context.Context
	cancel context.CancelFunc
	events chan progress.Event

	// Album state fed by events.
	albumTitle   string
	albumSongs   int
	batchTotal   int
	current      int
	currentTitle string
	percent      int
	completed    int
	success      int
	failed       int
	skipped      int
	bytes        int64

	summary *model.Summary
	logs    []LogEntry
	err     error

	// Options toggled on the input screen.
	optionsFocused bool
	renumber       bool
	overwrite      bool
	playlist       bool
	tags           bool
	cover          bool

	width  int
	height int
}

// New creates the TUI model. The registry decides which sites the
// entered URL may come from; settings provide the option defaults.
func New(settings *config.Settings, registry *site.Registry, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.izanmei.cc/album/hymns-442-1.html"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	bar := progressbar.New(progressbar.WithDefaultGradient())
	bar.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  bar,
		settings:  settings,
		registry:  registry,
		client:    xhttp.NewClient(settings.TimeoutDuration(), settings.UserAgent),
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		renumber:  settings.Renumber,
		overwrite: settings.Overwrite,
		playlist:  settings.CreatePlaylist,
		tags:      settings.ModifyTags,
		cover:     settings.SaveCover,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// EventMsg wraps one progress event from the running batch.
	EventMsg struct {
		Event progress.Event
	}

	// BatchDoneMsg is sent when the batch finishes, for any reason.
	BatchDoneMsg struct {
		Summary *model.Summary
		Err     error
	}
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
			if m.state == StateResolving || m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateResolving
				m.events = make(chan progress.Event, 64)
				return m, tea.Batch(
					m.runBatch(strings.TrimSpace(m.textInput.Value())),
					m.waitForEvent(),
					m.spinner.Tick,
				)
			}

		case "tab":
			if m.state == StateInput {
				m.optionsFocused = !m.optionsFocused
				if m.optionsFocused {
					m.textInput.Blur()
				} else {
					m.textInput.Focus()
				}
			}

		case "n":
			if m.state == StateInput && m.optionsFocused {
				m.renumber = !m.renumber
			}

		case "w":
			if m.state == StateInput && m.optionsFocused {
				m.overwrite = !m.overwrite
			}

		case "p":
			if m.state == StateInput && m.optionsFocused {
				m.playlist = !m.playlist
			}

		case "t":
			if m.state == StateInput && m.optionsFocused {
				m.tags = !m.tags
			}

		case "c":
			if m.state == StateInput && m.optionsFocused {
				m.cover = !m.cover
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new download
				m.state = StateInput
				m.logs = nil
				m.summary = nil
				m.err = nil
				m.albumTitle = ""
				m.albumSongs = 0
				m.batchTotal = 0
				m.current = 0
				m.currentTitle = ""
				m.percent = 0
				m.completed = 0
				m.success, m.failed, m.skipped = 0, 0, 0
				m.bytes = 0
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				m.optionsFocused = false
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		cmds = append(cmds, m.waitForEvent())
		switch e := msg.Event; e.Kind {
		case progress.KindAlbumStart:
			m.albumTitle = e.Title
			m.albumSongs = e.Total
			if m.state == StateResolving {
				m.state = StateDownloading
			}

		case progress.KindSongStart:
			m.current = e.Index
			m.batchTotal = e.Total
			m.currentTitle = e.Title
			m.percent = 0

		case progress.KindSongProgress:
			m.percent = e.Percent
			cmds = append(cmds, m.progress.SetPercent(m.overallPercent()))

		case progress.KindSongComplete:
			m.completed++
			switch e.Status {
			case string(model.StatusSuccess):
				m.success++
				m.bytes += e.Size
			case string(model.StatusFailed):
				m.failed++
			default:
				m.skipped++
			}
			m.percent = 0
			m.logs = append(m.logs, songLogEntry(e))
			// Keep only the last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
			cmds = append(cmds, m.progress.SetPercent(m.overallPercent()))

		case progress.KindAlbumComplete:
			m.success, m.failed, m.skipped = e.Success, e.Failed, e.Skipped
			cmds = append(cmds, m.progress.SetPercent(1))

		case progress.KindError:
			m.logs = append(m.logs, LogEntry{Message: e.Message, Status: string(model.StatusFailed)})
		}

	case BatchDoneMsg:
		m.summary = msg.Summary
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			if m.err == nil {
				m.err = fmt.Errorf("cancelled by user")
			}
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case progressbar.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progressbar.Model)
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

// runBatch downloads the album inside the command's goroutine, feeding
// progress into m.events. The channel is closed before the final
// message so the event pump can wind down.
func (m Model) runBatch(url string) tea.Cmd {
	settings := *m.settings
	settings.Renumber = m.renumber
	settings.Overwrite = m.overwrite
	settings.CreatePlaylist = m.playlist
	settings.ModifyTags = m.tags
	settings.SaveCover = m.cover

	events := m.events
	ctx := m.ctx
	manager := download.NewManager(&settings, m.client, m.registry, progress.ChanSink(events), m.log)

	return func() tea.Msg {
		summary, err := manager.DownloadAlbum(ctx, url)
		close(events)
		return BatchDoneMsg{Summary: summary, Err: err}
	}
}

// waitForEvent pumps the next batch event into Update. The EventMsg
// handler re-arms it until the channel closes.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: e}
	}
}

// overallPercent maps batch position to the progress bar: completed
// songs plus the in-flight song's share.
func (m Model) overallPercent() float64 {
	if m.batchTotal == 0 {
		return 0
	}
	return (float64(m.completed) + float64(m.percent)/100) / float64(m.batchTotal)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Zanmei Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Batch download hymn albums from izanmei.cc"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
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

	b.WriteString(subtitleStyle.Render("Enter album page URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	header := "Options:"
	if m.optionsFocused {
		header = "Options (tab to return to the URL):"
	}
	b.WriteString(infoStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Ordinal filename prefixes (n)\n", check(m.renumber)))
	b.WriteString(fmt.Sprintf("  %s Overwrite existing files (w)\n", check(m.overwrite)))
	b.WriteString(fmt.Sprintf("  %s Create .m3u playlist (p)\n", check(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Write ID3 tags (t)\n", check(m.tags)))
	b.WriteString(fmt.Sprintf("  %s Save cover art (c)\n", check(m.cover)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewResolving() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching album page..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	if m.albumTitle != "" {
		b.WriteString(albumStyle.Render(fmt.Sprintf("♪ %s", m.albumTitle)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d songs", m.albumSongs)))
		b.WriteString("\n\n")
	}

	if m.current > 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("[%d/%d] %s", m.current, m.batchTotal, m.currentTitle)))
		b.WriteString("\n")
	}

	b.WriteString(m.progress.ViewAs(m.overallPercent()))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Songs: %d/%d | Downloaded: %.2f MB",
		m.completed,
		m.batchTotal,
		float64(m.bytes)/1024/1024,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	success, failed, skipped, total := m.success, m.failed, m.skipped, m.batchTotal
	if m.summary != nil {
		success, failed, skipped, total = m.summary.Success, m.summary.Failed, m.summary.Skipped, m.summary.Total
	}

	return boxStyle.Render(fmt.Sprintf(
		"✨ Download Complete!\n\n"+
			"Success: %d\n"+
			"Failed: %d\n"+
			"Skipped: %d\n"+
			"Total: %d\n"+
			"Size: %.2f MB",
		success,
		failed,
		skipped,
		total,
		float64(m.bytes)/1024/1024,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func songLogEntry(e progress.Event) LogEntry {
	if e.Status == string(model.StatusSuccess) {
		return LogEntry{
			Message: fmt.Sprintf("%s (%.1f MB)", e.Title, float64(e.Size)/1024/1024),
			Status:  e.Status,
		}
	}
	return LogEntry{
		Message: fmt.Sprintf("%s: %s", e.Title, e.Message),
		Status:  e.Status,
	}
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch entry.Status {
		case string(model.StatusSuccess):
			style = successStyle
			prefix = "✓"
		case string(model.StatusFailed):
			style = errorStyle
			prefix = "✗"
		case string(model.StatusSkipped):
			style = warningStyle
			prefix = "!"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		if m.optionsFocused {
			return "n/w/p/t/c: toggle • tab: edit url • enter: start • esc: quit"
		}
		return "enter: start • tab: options • esc: quit"
	case StateResolving, StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new download • q: quit"
	}
	return ""
}

// Run starts the TUI application and blocks until it exits.
func Run(settings *config.Settings, registry *site.Registry, log *logger.Logger) error {
	p := tea.NewProgram(New(settings, registry, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
