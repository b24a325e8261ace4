package game

// cell holds the living enemies whose center falls inside it
type cell struct {
	enemies []*Enemy
}

// add appends an enemy to the cell
func (c *cell) add(e *Enemy) {
	c.enemies = append(c.enemies, e)
}

// remove swaps the enemy out of the cell
func (c *cell) remove(e *Enemy) {
	for i, other := range c.enemies {
		if other == e {
			last := len(c.enemies) - 1
			c.enemies[i] = c.enemies[last]
			c.enemies[last] = nil
			c.enemies = c.enemies[:last]
			return
		}
	}
}

// Grid is a uniform spatial partition over the play area used to answer
// enemy overlap queries without scanning every enemy.
// The cell size is at least the largest enemy diameter, so any overlapping
// pair is always within the 3x3 neighborhood of either center.
type Grid struct {
	cfg    *Config
	cells  [][]cell
	countX int
	countY int
}

// NewGrid creates a grid with preallocated cells
func NewGrid(cfg *Config) *Grid {
	countX, countY := cfg.CellCountX(), cfg.CellCountY()
	cells := make([][]cell, countX)
	for x := range cells {
		cells[x] = make([]cell, countY)
	}
	return &Grid{cfg: cfg, cells: cells, countX: countX, countY: countY}
}

// cellOf converts world coordinates to cell coordinates, clamped to the grid
func (g *Grid) cellOf(p Vec2) (int, int) {
	cx := int(p.X / g.cfg.GridCellSize)
	cy := int(p.Y / g.cfg.GridCellSize)
	cx = max(0, min(cx, g.countX-1))
	cy = max(0, min(cy, g.countY-1))
	return cx, cy
}

// Reset clears every cell but keeps capacity
func (g *Grid) Reset() {
	for x := range g.cells {
		for y := range g.cells[x] {
			clear(g.cells[x][y].enemies)
			g.cells[x][y].enemies = g.cells[x][y].enemies[:0]
		}
	}
}

// Rebuild indexes every living enemy
func (g *Grid) Rebuild(enemies []*Enemy) {
	g.Reset()
	for _, e := range enemies {
		if e.Alive() {
			g.Insert(e)
		}
	}
}

// Insert registers an enemy in the cell containing its center
func (g *Grid) Insert(e *Enemy) {
	cx, cy := g.cellOf(e.Pos)
	g.cells[cx][cy].add(e)
}

// Move updates cell membership after an enemy's position changed from `from`
func (g *Grid) Move(e *Enemy, from Vec2) {
	ox, oy := g.cellOf(from)
	nx, ny := g.cellOf(e.Pos)
	if ox == nx && oy == ny {
		return
	}
	g.cells[ox][oy].remove(e)
	g.cells[nx][ny].add(e)
}

// Overlaps reports whether a circle at pos with the given radius intersects
// any indexed enemy other than `self` (which may be nil)
func (g *Grid) Overlaps(pos Vec2, radius float64, self *Enemy) bool {
	cx, cy := g.cellOf(pos)
	for x := cx - 1; x <= cx+1; x++ {
		if x < 0 || x >= g.countX {
			continue
		}
		for y := cy - 1; y <= cy+1; y++ {
			if y < 0 || y >= g.countY {
				continue
			}
			for _, other := range g.cells[x][y].enemies {
				if other == self {
					continue
				}
				if circlesOverlap(pos, radius, other.Pos, other.Radius) {
					return true
				}
			}
		}
	}
	return false
}
