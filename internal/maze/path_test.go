package maze

import "testing"

// bruteShortest enumerates every simple path between two tiles and returns
// the minimum length in tiles, or -1 when no path exists. Exponential; only
// for cross-checking BFS on tiny grids.
func bruteShortest(g *Grid, from, to Tile) int {
	best := -1
	visited := map[Tile]bool{from: true}

	var walk func(cur Tile, length int)
	walk = func(cur Tile, length int) {
		if cur == to {
			if best == -1 || length < best {
				best = length
			}
			return
		}
		for _, n := range g.OpenNeighbors(cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			walk(n, length+1)
			visited[n] = false
		}
	}
	walk(from, 0)
	return best
}

func TestShortestPathTrivial(t *testing.T) {
	g := mustParse(t, testLayout)

	path := ShortestPath(g, T(3, 3), T(3, 3))
	if len(path) != 1 || path[0] != T(3, 3) {
		t.Errorf("path to self = %v, expected [(3,3)]", path)
	}
}

func TestShortestPathProperties(t *testing.T) {
	g := mustParse(t, testLayout)

	from := T(1, 1)
	to := T(5, 5)
	path := ShortestPath(g, from, to)

	if len(path) == 0 {
		t.Fatal("expected a path in a connected maze")
	}
	if path[0] != from || path[len(path)-1] != to {
		t.Errorf("path endpoints = %v..%v, expected %v..%v", path[0], path[len(path)-1], from, to)
	}
	for i := 1; i < len(path); i++ {
		if g.DirTo(path[i-1], path[i]) == DirNone {
			t.Errorf("path step %v -> %v is not a wrapped neighbor move", path[i-1], path[i])
		}
		if !g.IsOpen(path[i]) {
			t.Errorf("path passes through wall at %v", path[i])
		}
	}

	// Shortest in tile count, verified against brute-force enumeration.
	if want := bruteShortest(g, from, to); len(path)-1 != want {
		t.Errorf("path length = %d edges, brute force found %d", len(path)-1, want)
	}
}

func TestShortestPathBruteForceGrid(t *testing.T) {
	g := mustParse(t, []string{
		"#####",
		"#P.G#",
		"#.#.#",
		"#...#",
		"#####",
	})

	open := []Tile{}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.IsOpen(T(col, row)) {
				open = append(open, T(col, row))
			}
		}
	}

	for _, a := range open {
		for _, b := range open {
			path := ShortestPath(g, a, b)
			want := bruteShortest(g, a, b)
			if want == -1 {
				if path != nil {
					t.Errorf("%v -> %v: expected no path, got %v", a, b, path)
				}
				continue
			}
			if len(path)-1 != want {
				t.Errorf("%v -> %v: BFS length %d, brute force %d", a, b, len(path)-1, want)
			}
		}
	}
}

func TestShortestPathUsesWrapEdges(t *testing.T) {
	g := mustParse(t, []string{
		"#########",
		"#P#####G#",
		"..#####..",
		"#########",
	})

	// The inner corridor is blocked; the only route runs through the seam.
	path := ShortestPath(g, T(1, 2), T(7, 2))
	if len(path) == 0 {
		t.Fatal("expected path through the wrap seam")
	}
	// Going through the seam takes 3 moves; staying inside would take 6
	// even if the middle were open.
	if len(path)-1 != 3 {
		t.Errorf("wrap path length = %d edges, expected 3", len(path)-1)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := mustParse(t, []string{
		"#######",
		"#P.#.G#",
		"#..#..#",
		"#######",
	})

	if path := ShortestPath(g, T(1, 1), T(5, 1)); path != nil {
		t.Errorf("expected nil path across the dividing wall, got %v", path)
	}

	// Source or destination on a wall is also no path, not an error.
	if path := ShortestPath(g, T(0, 0), T(1, 1)); path != nil {
		t.Errorf("expected nil path from a wall tile, got %v", path)
	}
}

func TestShortestPathDeterministic(t *testing.T) {
	g := mustParse(t, testLayout)

	first := ShortestPath(g, T(1, 1), T(5, 5))
	for i := 0; i < 10; i++ {
		again := ShortestPath(g, T(1, 1), T(5, 5))
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, expected %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: tile %d = %v, expected %v", i, j, again[j], first[j])
			}
		}
	}
}
