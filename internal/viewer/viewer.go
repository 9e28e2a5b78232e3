// internal/viewer/viewer.go
//
// Host-side model of what is on screen: the ordered list of loaded image
// files (one cell per file) and the layout their cells are arranged in.
// Decoding and drawing pixels is out of scope for the terminal front end;
// a cell displays its file identity and review state instead.

package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout is the on-screen arrangement of cells.
type Layout int

const (
	LayoutHorizontal Layout = iota
	LayoutVertical
	LayoutGrid
)

// Next cycles horizontal -> vertical -> grid -> horizontal.
func (l Layout) Next() Layout {
	switch l {
	case LayoutHorizontal:
		return LayoutVertical
	case LayoutVertical:
		return LayoutGrid
	default:
		return LayoutHorizontal
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutVertical:
		return "vertical"
	case LayoutGrid:
		return "grid"
	default:
		return "horizontal"
	}
}

// ParseLayout maps a config string to a Layout, defaulting to horizontal.
func ParseLayout(s string) Layout {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return LayoutVertical
	case "grid":
		return LayoutGrid
	default:
		return LayoutHorizontal
	}
}

// Cell is one on-screen region holding one loaded file.
type Cell struct {
	Index int
	Path  string
	Label string
}

// FileName returns the cell's base filename.
func (c Cell) FileName() string { return filepath.Base(c.Path) }

// LoadCells builds cells from the file paths handed to the viewer. Paths
// are made absolute and must point at existing regular files.
func LoadCells(paths []string) ([]Cell, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("viewer: no files to load")
	}
	cells := make([]Cell, len(paths))
	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("viewer: resolve %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("viewer: open %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("viewer: %s is a directory", p)
		}
		cells[i] = Cell{Index: i, Path: abs, Label: filepath.Base(abs)}
	}
	return cells, nil
}

// Paths returns the cells' file paths in cell order.
func Paths(cells []Cell) []string {
	paths := make([]string, len(cells))
	for i, c := range cells {
		paths[i] = c.Path
	}
	return paths
}

// GridDims returns the row and column counts used to arrange n cells in the
// grid layout: columns grow first, rows follow.
func GridDims(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = 1
	for cols*cols < n {
		cols++
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}
