package hex2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexshift/internal/core"
)

// Direction is one of the six shift directions of the hexagon.
type Direction int

const (
	NW Direction = iota // x-1, y+1
	N                   // y+1, z-1
	NE                  // x+1, z-1
	SW                  // x-1, z+1
	S                   // y-1, z+1
	SE                  // x+1, y-1
)

// deltas holds the per-axis step of every direction; 0 leaves the axis as is.
// Each row names exactly two axes, one up and one down, which keeps x+y+z at 0.
var deltas = [...][3]int{
	NW: {-1, +1, 0},
	N:  {0, +1, -1},
	NE: {+1, 0, -1},
	SW: {-1, 0, +1},
	S:  {0, -1, +1},
	SE: {+1, -1, 0},
}

var directionNames = [...]string{
	NW: "NW",
	N:  "N",
	NE: "NE",
	SW: "SW",
	S:  "S",
	SE: "SE",
}

// Directions returns all six directions in keyboard order (Q W E A S D).
func Directions() []Direction {
	return []Direction{NW, N, NE, SW, S, SE}
}

func (d Direction) delta() [3]int {
	if !d.Valid() {
		panic(fmt.Sprintf("hex2048: invalid direction %d", int(d)))
	}
	return deltas[d]
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= NW && d <= SE
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case NW:
		return SE
	case N:
		return S
	case NE:
		return SW
	case SW:
		return NE
	case S:
		return N
	default:
		return NW
	}
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a compass name (case-insensitive) or one of the
// keyboard letters q, w, e, a, s, d.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nw", "q":
		return NW, nil
	case "n", "w":
		return N, nil
	case "ne", "e":
		return NE, nil
	case "sw", "a":
		return SW, nil
	case "s":
		return S, nil
	case "se", "d":
		return SE, nil
	}
	return 0, fmt.Errorf("hex2048: unknown direction %q", s)
}

// DirectionForAction maps a platform shift action to its direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionNorthWest:
		return NW, true
	case core.ActionNorth:
		return N, true
	case core.ActionNorthEast:
		return NE, true
	case core.ActionSouthWest:
		return SW, true
	case core.ActionSouth:
		return S, true
	case core.ActionSouthEast:
		return SE, true
	}
	return 0, false
}
