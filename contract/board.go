package contract

// Board edge resolution. An edge forces a remap of the tile a mover lands
// on: ladders jump forward, snakes fall back. Resolution is chained: if the
// destination of one edge is the source of another, the mover keeps
// sliding, bounded by the active edge count so it always terminates on a
// validated (acyclic) edge set.

// resolveTile returns the final tile after applying the room's edges to a
// candidate landing tile.
func resolveTile(g *Game, tile uint8) uint8 {
	for hop := uint8(0); hop < g.MapLen; hop++ {
		next, ok := edgeLookup(g, tile)
		if !ok {
			break
		}
		tile = next
	}
	return tile
}

func edgeLookup(g *Game, tile uint8) (uint8, bool) {
	for i := uint8(0); i < g.MapLen; i++ {
		if g.MapFrom[i] == tile {
			return g.MapTo[i], true
		}
	}
	return 0, false
}

// validateEdges checks the configuration-time invariants on an edge set:
// bounded size, sources strictly inside the board, distinct sources, no
// self-loops, and no cycles (every chain settles within len(from) hops).
// Returns an empty string when valid, otherwise the reason.
func validateEdges(from, to []uint8, winPosition uint8) string {
	if len(from) != len(to) {
		return "from/to length mismatch"
	}
	if len(from) > MaxMapSize {
		return "too many edges"
	}
	seen := make(map[uint8]bool, len(from))
	for i := range from {
		if from[i] == 0 || from[i] >= winPosition {
			return "edge source off board"
		}
		if to[i] > winPosition {
			return "edge destination off board"
		}
		if from[i] == to[i] {
			return "self-loop edge"
		}
		if seen[from[i]] {
			return "duplicate edge source"
		}
		seen[from[i]] = true
	}

	// Follow every chain; if a tile is still a source after len(from)
	// hops the edge graph contains a cycle.
	next := make(map[uint8]uint8, len(from))
	for i := range from {
		next[from[i]] = to[i]
	}
	for i := range from {
		t := to[i]
		for hop := 0; hop <= len(from); hop++ {
			dst, ok := next[t]
			if !ok {
				break
			}
			if hop == len(from) {
				return "cyclic edges"
			}
			t = dst
		}
	}
	return ""
}
