package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-minopac/internal/maze"
)

func TestDefaultLevel(t *testing.T) {
	lvl := Default()

	if lvl.ID != DefaultID {
		t.Errorf("default ID = %q, expected %q", lvl.ID, DefaultID)
	}
	grid, err := lvl.NewGrid()
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if grid.Width() != 21 || grid.Height() != 21 {
		t.Errorf("default grid = %dx%d, expected 21x21", grid.Width(), grid.Height())
	}
	if len(grid.GhostSpawns()) != 4 {
		t.Errorf("default ghost spawns = %d, expected 4", len(grid.GhostSpawns()))
	}
	if grid.RemainingPellets() == 0 {
		t.Error("default level should contain pellets")
	}
}

func TestNewGridIsFresh(t *testing.T) {
	lvl := Default()

	g1, err := lvl.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	before := g1.RemainingPellets()
	if _, ok := g1.EatPellet(firstPellet(t, lvl)); !ok {
		t.Fatal("expected to eat a pellet")
	}

	g2, err := lvl.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g2.RemainingPellets() != before {
		t.Error("NewGrid should not share pellet state between sessions")
	}
}

func firstPellet(t *testing.T, lvl Level) maze.Tile {
	t.Helper()
	for y, row := range lvl.Rows {
		for x, ch := range row {
			if ch == '.' {
				return maze.T(x, y)
			}
		}
	}
	t.Fatal("no pellet in level")
	return maze.Tile{}
}

func TestParseRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "rows: ["},
		{"missing id", "name: x\nrows:\n  - \"###\"\n"},
		{"invalid layout", "id: bad\nrows:\n  - \"###\"\n  - \"#P#\"\n  - \"###\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()

	good := "id: mini\nname: Mini\nrows:\n  - \"#####\"\n  - \"#P.G#\"\n  - \"#...#\"\n  - \"#####\"\n"
	if err := os.WriteFile(filepath.Join(dir, "mini.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	// Invalid files are skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("rows: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-YAML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "classic" || ids[1] != "mini" {
		t.Errorf("ids = %v, expected [classic mini]", ids)
	}

	lvl, err := loader.LoadByID("mini")
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "Mini" || lvl.FilePath == "" {
		t.Errorf("loaded level = %+v", lvl)
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLoaderEmptyRoot(t *testing.T) {
	loader := NewLoader("")
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != DefaultID {
		t.Errorf("ids = %v, expected only the embedded default", ids)
	}
}
