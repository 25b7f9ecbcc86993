package hex2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexshift/internal/core"
)

// Key parsing errors.
var (
	ErrMalformedKey = errors.New("hex2048: malformed coordinate key")
	ErrNotOnPlane   = errors.New("hex2048: coordinates do not sum to zero")
)

// Cube is a hexagonal cell address in cube coordinates.
// Valid cells satisfy X+Y+Z == 0.
type Cube struct {
	X, Y, Z int
}

// C is a convenience constructor for Cube.
func C(x, y, z int) Cube {
	return Cube{X: x, Y: y, Z: z}
}

// Key returns the canonical board key "x,y,z".
func (c Cube) Key() string {
	var b strings.Builder
	b.Grow(12)
	b.WriteString(strconv.Itoa(c.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.Y))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.Z))
	return b.String()
}

// String returns a readable form of the coordinate.
func (c Cube) String() string {
	return "(" + c.Key() + ")"
}

// axis returns the component at index 0 (x), 1 (y) or 2 (z).
func (c Cube) axis(i int) int {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Valid reports whether the coordinate lies on the x+y+z=0 plane.
func (c Cube) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Step returns the neighbour one step away in direction d.
// Each axis the direction names moves by its delta; the others are copied.
func (c Cube) Step(d Direction) Cube {
	delta := d.delta()
	return Cube{X: c.X + delta[0], Y: c.Y + delta[1], Z: c.Z + delta[2]}
}

// Less orders coordinates by x, then y. Z follows from the other two.
func (c Cube) Less(o Cube) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// Ring returns the distance of the cell from the center.
func (c Cube) Ring() int {
	return core.Max3(core.Abs(c.X), core.Abs(c.Y), core.Abs(c.Z))
}

// InRange reports whether every component satisfies |v| < radius.
func InRange(c Cube, radius int) bool {
	return core.Abs(c.X) < radius && core.Abs(c.Y) < radius && core.Abs(c.Z) < radius
}

// ParseKey decodes a canonical "x,y,z" key.
// The key must round-trip exactly, so "+1", "01" or embedded spaces are rejected.
func ParseKey(key string) (Cube, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return Cube{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Cube{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
		}
		v[i] = n
	}

	c := Cube{X: v[0], Y: v[1], Z: v[2]}
	if c.Key() != key {
		return Cube{}, fmt.Errorf("%w: %q is not canonical", ErrMalformedKey, key)
	}
	if !c.Valid() {
		return Cube{}, fmt.Errorf("%w: %q", ErrNotOnPlane, key)
	}
	return c, nil
}

// MustParseKey is like ParseKey but panics on error.
// Boards handed to the resolver must only carry valid keys.
func MustParseKey(key string) Cube {
	c, err := ParseKey(key)
	if err != nil {
		panic(err)
	}
	return c
}

// CellCount returns the number of cells in a hexagon of the given radius.
func CellCount(radius int) int {
	if radius < 1 {
		return 0
	}
	return 3*radius*(radius-1) + 1
}

// FieldCoords lists every in-range cell ordered by Cube.Less.
func FieldCoords(radius int) []Cube {
	limit := radius - 1
	coords := make([]Cube, 0, CellCount(radius))
	for x := -limit; x <= limit; x++ {
		for y := -limit; y <= limit; y++ {
			c := Cube{X: x, Y: y, Z: -x - y}
			if InRange(c, radius) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
