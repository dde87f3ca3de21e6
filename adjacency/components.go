package adjacency

// componentCount returns the number of connected components of the
// relation given by links over n regions.
// It uses a disjoint-set (union-find) structure with path compression
// and union by rank, so a single pass over the links suffices.
// Complexity: O(N + L·α(N)) time, O(N) memory.
func componentCount(n int, links [][2]int) int {
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// find walks up to the root, flattening the path as it goes.
	var find func(v int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]] // path compression
			v = parent[v]
		}

		return v
	}

	count := n
	for _, l := range links {
		ri, rj := find(l[0]), find(l[1])
		if ri == rj {
			continue
		}
		// union by rank: attach the shallower tree under the deeper one.
		switch {
		case rank[ri] < rank[rj]:
			parent[ri] = rj
		case rank[ri] > rank[rj]:
			parent[rj] = ri
		default:
			parent[rj] = ri
			rank[ri]++
		}
		count--
	}

	return count
}
