// cmd/mosaiq/main.go
//
// Entry point for the mosaiq viewer. Image file paths arrive as command
// line arguments; everything after that is driven by the TUI.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosaiq/mosaiq/internal/config"
	"github.com/mosaiq/mosaiq/internal/journal"
	"github.com/mosaiq/mosaiq/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s FILE [FILE...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "open two or more related image files to enable review mode")
		os.Exit(2)
	}

	cfgDir, err := config.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error locating config dir: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	jnl, err := journal.Open(filepath.Join(cfgDir, "logs", "review.log"))
	if err != nil {
		// The viewer works without a journal; the panel just stays empty.
		fmt.Fprintf(os.Stderr, "warning: journal unavailable: %v\n", err)
		jnl = nil
	}
	defer jnl.Close()

	app, err := tui.NewApp(os.Args[1:], cfg, jnl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running viewer: %v\n", err)
		os.Exit(1)
	}
}
