package maze

// Reachable reports whether any cell holding target can be reached from
// the start position by unit steps over passable cells.
func Reachable(g Grid, from Position, target Cell) bool {
	if !g.InBounds(from) || !g.At(from).Passable() {
		return false
	}

	seen := make([][]bool, g.Height())
	for y := range seen {
		seen[y] = make([]bool, g.Width())
	}

	queue := []Position{from}
	seen[from.Y][from.X] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if g.At(p) == target {
			return true
		}

		for _, d := range Directions {
			next := p.Add(d)
			if !g.InBounds(next) || seen[next.Y][next.X] || !g.At(next).Passable() {
				continue
			}
			seen[next.Y][next.X] = true
			queue = append(queue, next)
		}
	}

	return false
}
