// internal/tui/app.go
//
// The terminal front end for mosaiq. It uses bubbletea, which follows The
// Elm Architecture: the App model holds all state, Update reacts to
// messages, View renders to a string. The review core is driven with plain
// synchronous calls from Update — one per user action, as the core expects.

package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mosaiq/mosaiq/internal/config"
	"github.com/mosaiq/mosaiq/internal/journal"
	"github.com/mosaiq/mosaiq/internal/review"
	"github.com/mosaiq/mosaiq/internal/viewer"
)

// inputMode tells Update where keystrokes go.
type inputMode int

const (
	modeBrowse  inputMode = iota // keys drive navigation
	modePattern                  // keys go to the pattern editor
)

const journalTailLines = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	cellBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	cellFocusStyle = cellBorderStyle.
			BorderForeground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Italic(true)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
	journalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

// App is the main application model.
type App struct {
	cells  []viewer.Cell
	layout viewer.Layout

	cfg     *config.Config
	journal *journal.Journal

	nav       *review.Navigator
	snap      review.Snapshot
	reviewing bool

	mode      inputMode
	focusSlot int
	editor    textinput.Model

	statusMsg string
	width     int
	height    int
}

// NewApp builds the model from the files handed to the viewer on the
// command line.
func NewApp(paths []string, cfg *config.Config, jnl *journal.Journal) (*App, error) {
	cells, err := viewer.LoadCells(paths)
	if err != nil {
		return nil, err
	}
	editor := textinput.New()
	editor.Prompt = "pattern> "
	editor.CharLimit = 256

	app := &App{
		cells:     cells,
		layout:    viewer.ParseLayout(cfg.Settings.Layout),
		cfg:       cfg,
		journal:   jnl,
		nav:       review.NewNavigator(cfg.Settings.MinSlotsMatched),
		editor:    editor,
		statusMsg: fmt.Sprintf("%d file(s) loaded · press v for review mode", len(cells)),
	}
	jnl.Info("viewer opened with %d file(s) in %s", len(cells), filepath.Dir(cells[0].Path))
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called for every incoming message.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.mode == modePattern {
			return a.updatePatternEditor(msg)
		}
		return a.updateBrowse(msg)
	}
	return a, nil
}

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		a.persistSettings()
		return a, tea.Quit

	case "l":
		a.layout = a.layout.Next()
		a.statusMsg = fmt.Sprintf("layout: %s", a.layout)

	case "v":
		if a.reviewing {
			a.deactivateReview()
		} else {
			a.activateReview()
		}

	case "left":
		a.navigate(-1)

	case "right":
		a.navigate(+1)

	case "r":
		a.refreshReview()

	case "R":
		a.recomputeReview()

	case "tab":
		if len(a.cells) > 0 {
			a.focusSlot = (a.focusSlot + 1) % len(a.cells)
		}

	case "e":
		a.beginPatternEdit()
	}
	return a, nil
}

func (a *App) updatePatternEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.editor.Blur()
		a.statusMsg = "pattern edit cancelled"
		return a, nil

	case "enter":
		a.mode = modeBrowse
		a.editor.Blur()
		a.applyPatternEdit(a.editor.Value())
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *App) activateReview() {
	snap, err := a.nav.Activate(viewer.Paths(a.cells))
	if err != nil {
		a.reportError("activate", err)
		return
	}
	a.snap = snap
	a.reviewing = true
	a.statusMsg = fmt.Sprintf("review active · %d set(s) found", len(snap.Radixes))
	a.journal.Info("review activated · radix %q · %d set(s)", snap.Radix, len(snap.Radixes))
}

func (a *App) deactivateReview() {
	a.nav.Deactivate()
	a.reviewing = false
	a.snap = review.Snapshot{}
	a.statusMsg = "review mode off"
	a.journal.Info("review deactivated")
}

func (a *App) navigate(delta int) {
	if !a.reviewing {
		return
	}
	snap, err := a.nav.Navigate(delta)
	if err != nil {
		a.reportError("navigate", err)
		return
	}
	a.snap = snap
	if snap.Index >= 0 {
		a.statusMsg = fmt.Sprintf("set %d of %d · %s", snap.Index+1, len(snap.Radixes), snap.Radix)
		a.journal.Info("navigate · %s", snap.Radix)
	}
}

func (a *App) refreshReview() {
	if !a.reviewing {
		return
	}
	snap, err := a.nav.Refresh()
	if err != nil {
		// A failed scan keeps the previous radix list; show it as-is.
		a.snap = snap
		a.reportError("refresh", err)
		return
	}
	a.snap = snap
	a.statusMsg = fmt.Sprintf("rescanned · %d set(s)", len(snap.Radixes))
	a.journal.Info("refresh · %d set(s)", len(snap.Radixes))
}

func (a *App) recomputeReview() {
	if !a.reviewing {
		return
	}
	snap, err := a.nav.Recompute(viewer.Paths(a.cells))
	if err != nil {
		a.reportError("recompute", err)
		return
	}
	a.snap = snap
	a.statusMsg = fmt.Sprintf("patterns recomputed · %d set(s)", len(snap.Radixes))
	a.journal.Info("recompute · radix %q", snap.Radix)
}

func (a *App) beginPatternEdit() {
	if !a.reviewing || a.focusSlot >= len(a.snap.Patterns) {
		a.statusMsg = "activate review mode before editing patterns"
		return
	}
	a.mode = modePattern
	a.editor.SetValue(a.snap.Patterns[a.focusSlot])
	a.editor.CursorEnd()
	a.editor.Focus()
	a.statusMsg = fmt.Sprintf("editing pattern for slot %d · enter applies, esc cancels", a.focusSlot)
}

func (a *App) applyPatternEdit(text string) {
	if err := a.nav.SetSlotPattern(a.focusSlot, text); err != nil {
		a.reportError("pattern", err)
		return
	}
	snap, err := a.nav.Refresh()
	a.snap = snap
	if err != nil {
		a.reportError("refresh", err)
		return
	}
	a.statusMsg = fmt.Sprintf("pattern applied · %d set(s)", len(snap.Radixes))
	a.journal.Info("slot %d pattern edited", a.focusSlot)
}

// reportError turns core errors into a human-readable status line. Every
// review error is recoverable; the session, if any, is untouched.
func (a *App) reportError(op string, err error) {
	var msg string
	switch {
	case errors.Is(err, review.ErrInsufficientInput):
		msg = "need at least two loaded files"
	case errors.Is(err, review.ErrDegenerateInput):
		msg = "loaded filenames share no usable naming pattern"
	case errors.Is(err, review.ErrCrossDirectory):
		msg = "loaded files must share one directory"
	case errors.Is(err, review.ErrInvalidPattern):
		msg = "invalid pattern · previous pattern kept"
	case errors.Is(err, review.ErrInactive):
		msg = "review mode is not active"
	default:
		msg = err.Error()
	}
	a.statusMsg = fmt.Sprintf("%s: %s", op, msg)
	a.journal.Error("%s failed: %v", op, err)
}

// persistSettings writes the current layout back to config.yaml so the next
// launch starts the same way.
func (a *App) persistSettings() {
	a.cfg.Settings.Layout = a.layout.String()
	if err := a.cfg.Save(); err != nil {
		a.journal.Warn("save settings: %v", err)
	}
}

// View renders the whole screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	sections := []string{
		titleStyle.Render("◧ MOSAIQ"),
		a.renderCells(width),
	}
	if a.reviewing {
		sections = append(sections, a.renderReviewBar())
	}
	if a.mode == modePattern {
		sections = append(sections, a.editor.View())
	}
	if a.cfg.Settings.ShowJournal {
		if panel := a.renderJournalPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	sections = append(sections, footerStyle.Render(a.statusMsg), a.renderHints())
	return strings.Join(sections, "\n")
}

func (a *App) renderCells(width int) string {
	rendered := make([]string, len(a.cells))
	for i := range a.cells {
		rendered[i] = a.renderCell(i, width)
	}
	switch a.layout {
	case viewer.LayoutVertical:
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	case viewer.LayoutGrid:
		_, cols := viewer.GridDims(len(rendered))
		var rows []string
		for start := 0; start < len(rendered); start += cols {
			end := start + cols
			if end > len(rendered) {
				end = len(rendered)
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
}

func (a *App) renderCell(i, width int) string {
	cellWidth := width/len(a.cells) - 4
	if a.layout != viewer.LayoutHorizontal || cellWidth < 16 {
		cellWidth = 24
	}

	label := a.cells[i].Label
	body := a.cells[i].FileName()
	if a.reviewing {
		if i < len(a.snap.Labels) && a.snap.Labels[i] != "" {
			label = a.snap.Labels[i]
		}
		body = placeholderStyle.Render("(missing)")
		if i < len(a.snap.Resolved) && a.snap.Resolved[i] != "" {
			body = filepath.Base(a.snap.Resolved[i])
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), body)
	style := cellBorderStyle
	if i == a.focusSlot {
		style = cellFocusStyle
	}
	return style.Width(cellWidth).Render(content)
}

func (a *App) renderReviewBar() string {
	if len(a.snap.Radixes) == 0 {
		return placeholderStyle.Render("no matching sets in this directory")
	}
	return fmt.Sprintf("set %d of %d · %s", a.snap.Index+1, len(a.snap.Radixes), a.snap.Radix)
}

func (a *App) renderJournalPanel() string {
	lines := a.journal.Tail(journalTailLines)
	if len(lines) == 0 {
		return ""
	}
	return journalStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderHints() string {
	if a.mode == modePattern {
		return footerStyle.Render("enter apply · esc cancel")
	}
	if a.reviewing {
		return footerStyle.Render("←/→ sets · r refresh · R recompute · tab slot · e edit pattern · v exit review · q quit")
	}
	return footerStyle.Render("v review mode · l layout · q quit")
}
