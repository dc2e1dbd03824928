package minopac

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-minopac/internal/config"
	"github.com/vovakirdan/tui-minopac/internal/maze"
)

// ChaseContext is the read-only view of the world handed to targeting
// strategies when a ghost settles on a tile center.
type ChaseContext struct {
	Grid       *maze.Grid
	PlayerTile maze.Tile
	PlayerDir  maze.Dir
	GhostTile  maze.Tile
	GhostDir   maze.Dir // the ghost's current heading, DirNone when fresh
	Elapsed    float64  // seconds since round start
	Rand       *rand.Rand
}

// Strategy picks a target tile for a ghost. The target does not need to be
// reachable or even walkable; the ghost greedily steps toward it, so a wall
// target still produces sensible pursuit.
type Strategy interface {
	// Name returns the personality name ("chaser", "ambusher", ...).
	Name() string

	// Target returns the tile the ghost should steer toward.
	Target(ctx ChaseContext) maze.Tile
}

// SpeedShaper is an optional interface for strategies that modulate the
// ghost's base speed over time.
type SpeedShaper interface {
	SpeedMultiplier(elapsed float64) float64
}

// StrategyFactory builds a strategy from one ghost roster entry.
type StrategyFactory func(ghost config.GhostConfig, cfg config.MinopacConfig) (Strategy, error)

var (
	strategyMu        sync.RWMutex
	strategyFactories = map[string]StrategyFactory{}
)

// RegisterStrategy adds a personality under a name. Built-in personalities
// register in init(); external packages may add their own before the game
// is reset. Panics on duplicate names.
func RegisterStrategy(name string, f StrategyFactory) {
	strategyMu.Lock()
	defer strategyMu.Unlock()

	if _, exists := strategyFactories[name]; exists {
		panic(fmt.Sprintf("minopac: strategy %q already registered", name))
	}
	strategyFactories[name] = f
}

// NewStrategy instantiates the personality named in the roster entry.
func NewStrategy(ghost config.GhostConfig, cfg config.MinopacConfig) (Strategy, error) {
	strategyMu.RLock()
	f, ok := strategyFactories[ghost.Personality]
	strategyMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("minopac: unknown personality %q", ghost.Personality)
	}
	return f(ghost, cfg)
}

// StrategyNames returns the registered personality names, sorted.
func StrategyNames() []string {
	strategyMu.RLock()
	defer strategyMu.RUnlock()

	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterStrategy("chaser", func(_ config.GhostConfig, _ config.MinopacConfig) (Strategy, error) {
		return chaser{}, nil
	})
	RegisterStrategy("ambusher", func(_ config.GhostConfig, cfg config.MinopacConfig) (Strategy, error) {
		offset := cfg.Gameplay.AmbushOffset
		if offset <= 0 {
			offset = 4
		}
		return ambusher{offset: offset}, nil
	})
	RegisterStrategy("wanderer", func(_ config.GhostConfig, _ config.MinopacConfig) (Strategy, error) {
		return wanderer{}, nil
	})
	RegisterStrategy("accelerator", func(ghost config.GhostConfig, cfg config.MinopacConfig) (Strategy, error) {
		acc := ghost.Accelerator
		if acc == nil {
			acc = &config.AcceleratorCfg{Delegate: "chaser", RampPerSecond: 0.02, MaxMultiplier: 1.6}
		}
		delegate, err := NewStrategy(config.GhostConfig{Personality: acc.Delegate}, cfg)
		if err != nil {
			return nil, fmt.Errorf("minopac: accelerator delegate: %w", err)
		}
		return &accelerator{
			delegate: delegate,
			ramp:     acc.RampPerSecond,
			max:      acc.MaxMultiplier,
		}, nil
	})
}

// chaser heads straight for the player's current tile.
type chaser struct{}

func (chaser) Name() string { return "chaser" }

func (chaser) Target(ctx ChaseContext) maze.Tile {
	return ctx.PlayerTile
}

// ambusher aims a few tiles ahead of the player's heading, cutting off the
// corridor the player is about to enter. With no heading it collapses to a
// plain chase.
type ambusher struct {
	offset int
}

func (ambusher) Name() string { return "ambusher" }

func (a ambusher) Target(ctx ChaseContext) maze.Tile {
	dc, dr := ctx.PlayerDir.Delta()
	if dc == 0 && dr == 0 {
		return ctx.PlayerTile
	}
	ahead := maze.Tile{
		Col: ctx.PlayerTile.Col + dc*a.offset,
		Row: ctx.PlayerTile.Row + dr*a.offset,
	}
	// Projections land inside walls often; snap to the closest corridor so
	// the ambush point is somewhere the player could actually be.
	return ctx.Grid.NearestOpenTile(ahead)
}

// wanderer picks a uniformly random open neighbor as its target, drifting
// through the maze with no interest in the player. The tile behind the ghost
// is excluded from the draw unless it is the only way out.
type wanderer struct{}

func (wanderer) Name() string { return "wanderer" }

func (wanderer) Target(ctx ChaseContext) maze.Tile {
	open := ctx.Grid.OpenNeighbors(ctx.GhostTile)
	if len(open) == 0 {
		return ctx.GhostTile
	}
	if ctx.GhostDir != maze.DirNone && len(open) > 1 {
		back := ctx.Grid.NeighborInDirection(ctx.GhostTile, ctx.GhostDir.Opposite())
		forward := make([]maze.Tile, 0, len(open))
		for _, n := range open {
			if n != back {
				forward = append(forward, n)
			}
		}
		open = forward
	}
	return open[ctx.Rand.Intn(len(open))]
}

// accelerator targets like its delegate but gets faster the longer the
// round runs, up to a cap.
type accelerator struct {
	delegate Strategy
	ramp     float64
	max      float64
}

func (*accelerator) Name() string { return "accelerator" }

func (s *accelerator) Target(ctx ChaseContext) maze.Tile {
	return s.delegate.Target(ctx)
}

func (s *accelerator) SpeedMultiplier(elapsed float64) float64 {
	m := 1 + s.ramp*elapsed
	if m > s.max {
		m = s.max
	}
	return m
}
