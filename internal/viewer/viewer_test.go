package viewer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLayoutCycle(t *testing.T) {
	l := LayoutHorizontal
	order := []Layout{LayoutVertical, LayoutGrid, LayoutHorizontal}
	for _, want := range order {
		l = l.Next()
		if l != want {
			t.Fatalf("cycle = %s, want %s", l, want)
		}
	}
}

func TestParseLayout(t *testing.T) {
	cases := map[string]Layout{
		"horizontal": LayoutHorizontal,
		"Vertical":   LayoutVertical,
		" grid ":     LayoutGrid,
		"bogus":      LayoutHorizontal,
		"":           LayoutHorizontal,
	}
	for in, want := range cases {
		if got := ParseLayout(in); got != want {
			t.Errorf("ParseLayout(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLoadCells(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "shot_001_diffuse.jpg")
	b := filepath.Join(dir, "shot_001_specular.jpg")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cells, err := LoadCells([]string{a, b})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(cells))
	}
	if cells[0].Index != 0 || cells[1].Index != 1 {
		t.Fatalf("cell order broken: %+v", cells)
	}
	if cells[0].FileName() != "shot_001_diffuse.jpg" {
		t.Fatalf("filename = %q", cells[0].FileName())
	}
	if got := Paths(cells); got[1] != b {
		t.Fatalf("paths = %v", got)
	}
}

func TestLoadCellsRejectsMissingFile(t *testing.T) {
	if _, err := LoadCells([]string{filepath.Join(t.TempDir(), "nope.jpg")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadCellsRejectsDirectory(t *testing.T) {
	if _, err := LoadCells([]string{t.TempDir()}); err == nil {
		t.Fatalf("expected error for directory")
	}
}

func TestLoadCellsRejectsEmptyInput(t *testing.T) {
	if _, err := LoadCells(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestGridDims(t *testing.T) {
	cases := []struct {
		n, rows, cols int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 2, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, c := range cases {
		rows, cols := GridDims(c.n)
		if rows != c.rows || cols != c.cols {
			t.Errorf("GridDims(%d) = %d,%d want %d,%d", c.n, rows, cols, c.rows, c.cols)
		}
	}
}
