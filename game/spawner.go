package game

// Edge identifies a side of the play area
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

// Spawner places new enemies on the play area edges
type Spawner struct {
	cfg    *Config
	rng    Rand
	nextID EntityID
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(cfg *Config, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// edgePosition returns a uniform position along the given edge
func (s *Spawner) edgePosition(edge Edge) Vec2 {
	w, h := s.cfg.Width, s.cfg.Height
	switch edge {
	case EdgeTop:
		return Vec2{s.rng.Float64() * w, 0}
	case EdgeRight:
		return Vec2{w, s.rng.Float64() * h}
	case EdgeBottom:
		return Vec2{s.rng.Float64() * w, h}
	default:
		return Vec2{0, s.rng.Float64() * h}
	}
}

// Spawn picks an edge, a position and a weighted kind, and returns the new
// enemy, or nil when it would overlap a living enemy. Rejected spawns are
// dropped, not retried.
func (s *Spawner) Spawn(occupied *Grid) *Enemy {
	edge := Edge(s.rng.Intn(int(edgeCount)))
	pos := s.edgePosition(edge)
	kind := s.cfg.Enemy.KindForRoll(s.rng.Float64())
	stats := s.cfg.Enemy.Stats(kind)

	if occupied.Overlaps(pos, stats.Radius, nil) {
		return nil
	}

	s.nextID++
	return newEnemy(s.nextID, kind, pos, stats)
}
