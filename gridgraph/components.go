package gridgraph

// FreeComponents finds all 4-connected regions of Free cells.
// Returns a slice of components in row-major discovery order; each component is a
// slice of row-major cell indices in BFS order from its first cell.
//
// To convert an index back to a Position, use PositionOf.
//
// Time:   O(R×C×4).
// Memory: O(R×C) for visited flags and output.
func (g *Grid) FreeComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if c == Obstacle || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := g.PositionOf(queue[qi])
			for _, d := range neighborOffsets {
				v := Position{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(v) || g.IsObstacle(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
