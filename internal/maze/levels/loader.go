// Package levels provides maze level loading for minopac. Levels are YAML
// files describing a textual maze layout; a default level ships embedded so
// the game runs with no files on disk. This package depends on maze but
// maze does not depend on levels.
package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-minopac/internal/maze"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultID is the id of the embedded level.
const DefaultID = "classic"

// Level is a parsed maze definition ready to instantiate grids from.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	TileSize float64
	FilePath string // empty for the embedded default
}

// NewGrid builds a fresh Grid for a play session. Each session gets its own
// grid because pellets are consumed in place.
func (l *Level) NewGrid() (*maze.Grid, error) {
	return maze.ParseLayout(l.Rows, l.TileSize)
}

// yamlLevel is the on-disk YAML structure.
type yamlLevel struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	TileSize float64  `yaml:"tile_size,omitempty"`
	Rows     []string `yaml:"rows"`
}

// Parse decodes a YAML level and validates its layout.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("levels: missing id")
	}
	if yl.TileSize <= 0 {
		yl.TileSize = maze.DefaultTileSize
	}

	// Validate the layout eagerly so bad files fail at load, not mid-game.
	if _, err := maze.ParseLayout(yl.Rows, yl.TileSize); err != nil {
		return Level{}, fmt.Errorf("levels: level %q: %w", yl.ID, err)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Rows,
		TileSize: yl.TileSize,
	}, nil
}

// Default returns the embedded classic level.
func Default() Level {
	lvl, err := Parse(defaultClassicYAML)
	if err != nil {
		// The embedded level is covered by tests; reaching this means the
		// binary shipped with a broken asset.
		panic(fmt.Sprintf("levels: embedded default invalid: %v", err))
	}
	return lvl
}

// Loader loads levels from a directory tree, with the embedded default
// always available.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory. An empty root
// serves only the embedded default.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns every valid level: the embedded default plus all parseable
// YAML files under Root, sorted by ID. Invalid files are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	out := []Level{Default()}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}
			lvl, loadErr := l.LoadFile(path)
			if loadErr != nil {
				// Skip invalid files
				return nil
			}
			out = append(out, lvl)
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID finds a level by ID among the embedded default and Root files.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}
