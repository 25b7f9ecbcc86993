package hex2048

import (
	"fmt"
	"sort"
)

// Board maps canonical cube keys to tile values. A missing key is an empty cell.
type Board map[string]int

// Tile is a tile value at a decoded position.
type Tile struct {
	Pos   Cube
	Value int
}

// NewBoard builds a board from tiles. Later tiles overwrite earlier ones
// at the same position.
func NewBoard(tiles ...Tile) Board {
	b := make(Board, len(tiles))
	for _, t := range tiles {
		b[t.Pos.Key()] = t.Value
	}
	return b
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Get returns the value at c, or 0 if the cell is empty.
func (b Board) Get(c Cube) int {
	return b[c.Key()]
}

// Put places a tile at c.
func (b Board) Put(c Cube, value int) {
	b[c.Key()] = value
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	return len(b)
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Tiles returns the decoded tiles ordered by Cube.Less.
// Panics on a malformed key.
func (b Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b))
	for k, v := range b {
		tiles = append(tiles, Tile{Pos: MustParseKey(k), Value: v})
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Pos.Less(tiles[j].Pos)
	})
	return tiles
}

// Keys returns the board keys ordered by Cube.Less.
func (b Board) Keys() []string {
	tiles := b.Tiles()
	keys := make([]string, len(tiles))
	for i, t := range tiles {
		keys[i] = t.Pos.Key()
	}
	return keys
}

// IsFull reports whether every cell of the hexagon is occupied.
func (b Board) IsFull(radius int) bool {
	return len(b) >= CellCount(radius)
}

// EmptyCells returns the unoccupied in-range cells ordered by Cube.Less.
func (b Board) EmptyCells(radius int) []Cube {
	var cells []Cube
	for _, c := range FieldCoords(radius) {
		if _, ok := b[c.Key()]; !ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// Validate checks that every key decodes, lies inside the hexagon and
// carries a positive value.
func (b Board) Validate(radius int) error {
	for k, v := range b {
		c, err := ParseKey(k)
		if err != nil {
			return err
		}
		if !InRange(c, radius) {
			return fmt.Errorf("hex2048: cell %s outside radius %d", c, radius)
		}
		if v <= 0 {
			return fmt.Errorf("hex2048: cell %s has non-positive value %d", c, v)
		}
	}
	return nil
}

// Equal reports whether two boards hold the same tiles.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for k, v := range b {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
