package layout

// Components groups the channels into islands: maximal sets of electrodes
// joined through 4-connected, non-empty cells. Islands and the channels in
// each are listed in discovery order, scanning the grid row by row and
// flooding outwards from the first unvisited electrode.
//
// A Laplacian only ever mixes a channel with members of its own island, so a
// montage that should be one cap but comes back as several islands usually
// has a stray 0 in the layout. A single-electrode island is a channel that
// will pass through unfiltered.
//
// Complexity: O(R·C).
func (l *Layout) Components() [][]int {
	visited := make([]bool, l.height*l.width)
	var islands [][]int

	for r := 0; r < l.height; r++ {
		for c := 0; c < l.width; c++ {
			if l.cells[r][c] <= Empty || visited[l.index(r, c)] {
				continue
			}
			islands = append(islands, l.flood(Position{Row: r, Col: c}, visited))
		}
	}
	return islands
}

// flood collects the channels reachable from start, marking them visited.
func (l *Layout) flood(start Position, visited []bool) []int {
	visited[l.index(start.Row, start.Col)] = true
	frontier := []Position{start}
	var island []int

	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		island = append(island, l.cells[p.Row][p.Col])

		for _, d := range l.neighborOffsets {
			next := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if l.At(next.Row, next.Col) <= Empty {
				continue
			}
			if i := l.index(next.Row, next.Col); !visited[i] {
				visited[i] = true
				frontier = append(frontier, next)
			}
		}
	}
	return island
}
