package maze

// ShortestPath finds the shortest open route between two tiles using
// breadth-first search over the wrap-aware open-neighbor adjacency.
//
// The returned path starts at source and ends at destination, with every
// consecutive pair an open wrapped neighbor. Neighbor visitation follows
// PlanOrder, so repeated calls on identical input return identical paths.
// An unreachable destination yields a nil path; callers fall back to local
// heuristics rather than treating that as an error. A destination equal to
// the source yields a single-element path.
func ShortestPath(g *Grid, source, destination Tile) []Tile {
	source = g.Normalize(source)
	destination = g.Normalize(destination)

	if !g.IsOpen(source) || !g.IsOpen(destination) {
		return nil
	}
	if source == destination {
		return []Tile{source}
	}

	parent := map[Tile]Tile{source: source}
	queue := []Tile{source}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range PlanOrder {
			next := g.NeighborInDirection(cur, d)
			if !g.IsOpen(next) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == destination {
				return rebuild(parent, source, destination)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// rebuild walks parent links backwards from destination to source.
func rebuild(parent map[Tile]Tile, source, destination Tile) []Tile {
	var rev []Tile
	for cur := destination; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
	}
	path := make([]Tile, len(rev))
	for i, t := range rev {
		path[len(rev)-1-i] = t
	}
	return path
}
