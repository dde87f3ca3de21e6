package adjacency

// Grid returns the rook-adjacency neighbor relation of a w×h lattice of
// regions, row-major indexed: region (x,y) has index y*w + x and
// neighbors its orthogonal contacts N, E, S, W. The result is symmetric
// and irreflexive by construction and, for w·h ≥ 2, has no isolated
// regions and a single connected component.
//
// A regular lattice is the standard synthetic stand-in for an areal map
// in tests and benchmarks.
//
// Returns ErrBadDimensions if w < 1 or h < 1; a 1×1 lattice is a single
// region with no neighbors and is rejected by Encode downstream.
// Complexity: O(W×H) time and memory.
func Grid(w, h int) ([][]int, error) {
	if w < 1 || h < 1 {
		return nil, ErrBadDimensions
	}

	// Orthogonal contacts only: diagonal touching is not shared-border
	// contiguity.
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	neighbors := make([][]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			list := make([]int, 0, 4)
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				list = append(list, ny*w+nx)
			}
			neighbors[i] = list
		}
	}

	return neighbors, nil
}
