package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosaiq/mosaiq/internal/config"
	"github.com/mosaiq/mosaiq/internal/journal"
	"github.com/mosaiq/mosaiq/internal/review"
	"github.com/mosaiq/mosaiq/internal/viewer"
)

func newTestApp(t *testing.T, names ...string) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	jnl, err := journal.Open(filepath.Join(t.TempDir(), "review.log"))
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	t.Cleanup(func() { jnl.Close() })

	paths := []string{
		filepath.Join(dir, names[0]),
		filepath.Join(dir, names[1]),
	}
	app, err := NewApp(paths, cfg, jnl)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, dir
}

func press(t *testing.T, app *App, key string) *App {
	t.Helper()
	var msg tea.Msg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return next
}

func TestActivateAndNavigate(t *testing.T) {
	app, dir := newTestApp(t, "shot_001_diffuse.jpg", "shot_001_specular.jpg")
	for _, name := range []string{"shot_002_diffuse.jpg", "shot_002_specular.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	app = press(t, app, "v")
	if !app.reviewing {
		t.Fatalf("review mode did not activate: %s", app.statusMsg)
	}
	if app.snap.Radix != "shot_001" {
		t.Fatalf("radix = %q, want shot_001", app.snap.Radix)
	}

	app = press(t, app, "right")
	if app.snap.Radix != "shot_002" {
		t.Fatalf("radix = %q after navigate, want shot_002", app.snap.Radix)
	}

	// No wraparound past the last set.
	app = press(t, app, "right")
	if app.snap.Radix != "shot_002" {
		t.Fatalf("navigation wrapped: %q", app.snap.Radix)
	}

	app = press(t, app, "v")
	if app.reviewing {
		t.Fatalf("review mode did not deactivate")
	}
}

func TestActivateFailureKeepsBrowsing(t *testing.T) {
	// Two unrelated names cannot seed a pattern set.
	app, _ := newTestApp(t, "abc.png", "xyz.jpg")
	app = press(t, app, "v")
	if app.reviewing {
		t.Fatalf("review mode must not activate on degenerate input")
	}
	if !strings.Contains(app.statusMsg, "naming pattern") {
		t.Fatalf("status = %q", app.statusMsg)
	}
}

func TestLayoutCycleAndPersist(t *testing.T) {
	app, _ := newTestApp(t, "shot_001_diffuse.jpg", "shot_001_specular.jpg")
	app = press(t, app, "l")
	if app.layout != viewer.LayoutVertical {
		t.Fatalf("layout = %s, want vertical", app.layout)
	}

	app.persistSettings()
	reloaded, err := config.Load(filepath.Dir(app.cfg.Path()))
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if reloaded.Settings.Layout != "vertical" {
		t.Fatalf("persisted layout = %q", reloaded.Settings.Layout)
	}
}

func TestPatternEditFlow(t *testing.T) {
	app, dir := newTestApp(t, "shot_001_diffuse.jpg", "shot_001_specular.jpg")
	for _, name := range []string{"shot_005_albedo.jpg", "shot_005_specular.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	app = press(t, app, "v")
	if !app.reviewing {
		t.Fatalf("activate failed: %s", app.statusMsg)
	}
	if got := len(app.snap.Radixes); got != 1 {
		t.Fatalf("initial sets = %d, want 1", got)
	}

	app = press(t, app, "e")
	if app.mode != modePattern {
		t.Fatalf("editor did not open")
	}
	app.editor.SetValue(`^(.*)_(?:diffuse|albedo)\.jpg$`)
	app = press(t, app, "enter")
	if app.mode != modeBrowse {
		t.Fatalf("editor did not close")
	}
	if got := len(app.snap.Radixes); got != 2 {
		t.Fatalf("sets after edit = %d, want 2 (%v)", got, app.snap.Radixes)
	}
}

func TestInvalidPatternEditKeepsSession(t *testing.T) {
	app, _ := newTestApp(t, "shot_001_diffuse.jpg", "shot_001_specular.jpg")
	app = press(t, app, "v")
	if !app.reviewing {
		t.Fatalf("activate failed: %s", app.statusMsg)
	}
	before := app.snap.Patterns[0]

	app = press(t, app, "e")
	app.editor.SetValue("(((broken")
	app = press(t, app, "enter")
	if !strings.Contains(app.statusMsg, "previous pattern kept") {
		t.Fatalf("status = %q", app.statusMsg)
	}
	if app.snap.Patterns[0] != before {
		t.Fatalf("pattern changed after invalid edit")
	}
}

func TestUnresolvedSlotRendersPlaceholder(t *testing.T) {
	app, dir := newTestApp(t, "shot_001_diffuse.jpg", "shot_001_specular.jpg")
	// shot_002 is missing its specular slot but still qualifies at
	// threshold 2 only if both slots match, so lower the bar first.
	if err := os.WriteFile(filepath.Join(dir, "shot_002_diffuse.jpg"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	app.cfg.Settings.MinSlotsMatched = 1
	app.nav = review.NewNavigator(1)

	app = press(t, app, "v")
	if !app.reviewing {
		t.Fatalf("activate failed: %s", app.statusMsg)
	}
	app = press(t, app, "right")
	if app.snap.Radix != "shot_002" {
		t.Fatalf("radix = %q", app.snap.Radix)
	}
	if app.snap.Resolved[1] != "" {
		t.Fatalf("specular slot should be unresolved")
	}
	if !strings.Contains(app.View(), "(missing)") {
		t.Fatalf("view lacks placeholder for unresolved slot")
	}
}
