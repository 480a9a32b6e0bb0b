package maze

// relax makes floor(width*height*ratio) attempts to remove a random wall.
// An attempt that lands on an open side or on the outer border is dropped rather
// than retried, so fewer walls than requested may come down.
func (m *Maze) relax() {
	attempts := m.maxRelaxations()
	for i := 0; i < attempts; i++ {
		x := m.rng.Intn(m.width)
		y := m.rng.Intn(m.height)
		d := Directions[m.rng.Intn(len(Directions))]

		cell := m.grid[y][x]
		if !cell.HasWall(d) {
			continue
		}
		nbr := m.neighbor(cell, d)
		if nbr == nil {
			continue
		}
		m.openWall(cell, nbr)
		m.relaxed++
	}
}
