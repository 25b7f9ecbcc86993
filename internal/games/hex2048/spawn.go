package hex2048

import (
	"math/rand"

	"github.com/vovakirdan/hexshift/internal/config"
)

// Spawner places new tiles on free cells.
// All randomness of a game flows through its Spawner, so a fixed seed
// replays the same game.
type Spawner struct {
	rng *rand.Rand
	cfg config.SpawnConfig
}

// NewSpawner creates a spawner seeded for deterministic placement.
func NewSpawner(seed int64, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Opening fills an empty board with the configured starting tiles.
func (s *Spawner) Opening(board Board, radius int) []Tile {
	values := make([]int, s.cfg.InitialCount)
	for i := range values {
		values[i] = s.cfg.InitialValue
	}
	return s.place(board, radius, values)
}

// Spawn adds the tiles that follow a successful move: one tile, or two
// with extraChance. Each is a 4 with fourChance, otherwise a 2.
func (s *Spawner) Spawn(board Board, radius int, extraChance, fourChance float64) []Tile {
	count := 1
	if s.rng.Float64() < extraChance {
		count = 2
	}

	values := make([]int, count)
	for i := range values {
		values[i] = 2
		if s.rng.Float64() < fourChance {
			values[i] = 4
		}
	}
	return s.place(board, radius, values)
}

// place writes values onto random empty cells of board.
// Placement stops early when the board fills up.
func (s *Spawner) place(board Board, radius int, values []int) []Tile {
	free := board.EmptyCells(radius)
	placed := make([]Tile, 0, len(values))

	for _, v := range values {
		if len(free) == 0 {
			break
		}
		i := s.rng.Intn(len(free))
		cell := free[i]
		free = append(free[:i], free[i+1:]...)

		board.Put(cell, v)
		placed = append(placed, Tile{Pos: cell, Value: v})
	}
	return placed
}
