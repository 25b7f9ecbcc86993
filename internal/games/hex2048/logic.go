package hex2048

// DefaultWinValue is the tile that ends a classic game.
const DefaultWinValue = 2048

// ShiftResult is the outcome of resolving one shift.
type ShiftResult struct {
	Board  Board // New board; the input board is never modified
	Moved  bool  // Whether any tile changed position
	Won    bool  // Whether a merge produced the win value
	Score  int   // Sum of the values created by merges
	Merges int   // Number of merges performed
}

// Resolver resolves shifts on a hexagon of fixed radius.
// It holds no state between calls and is safe to share.
type Resolver struct {
	Radius   int
	WinValue int // 0 disables the win check
}

// NewResolver creates a resolver for the given radius and win value.
func NewResolver(radius, winValue int) Resolver {
	return Resolver{Radius: radius, WinValue: winValue}
}

// ResolveShift slides every tile of board as far as possible in dir,
// merging equal pairs, until no tile can move.
func ResolveShift(board Board, dir Direction, radius, winValue int) ShiftResult {
	return NewResolver(radius, winValue).Shift(board, dir)
}

// HasAnyMove reports whether any of the six directions changes the board.
func HasAnyMove(board Board, radius, winValue int) bool {
	return NewResolver(radius, winValue).HasAnyMove(board)
}

// HasAnyMove tries every direction on a private copy of board and reports
// whether at least one of them moves a tile.
func (r Resolver) HasAnyMove(board Board) bool {
	for _, d := range Directions() {
		if r.Shift(board, d).Moved {
			return true
		}
	}
	return false
}

// AvailableDirections returns the directions that would move a tile.
func (r Resolver) AvailableDirections(board Board) []Direction {
	var dirs []Direction
	for _, d := range Directions() {
		if r.Shift(board, d).Moved {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Shift resolves one shift of board in dir.
//
// Tiles are scanned in order; the first tile whose walk ends somewhere else
// is written back and the scan starts over, because one move can unblock
// any other tile. Merge flags survive those restarts so a tile merges at
// most once per shift. A merge that produces the win value returns at
// once, leaving the remaining tiles where they stand.
func (r Resolver) Shift(board Board, dir Direction) ShiftResult {
	w := newWorkingSet(board, dir, r.Radius)
	var res ShiftResult

	for {
		changed := false
		for _, key := range w.order {
			start := w.tiles[key]
			end, moved, merged := w.walk(*start)
			if !moved {
				continue
			}

			w.apply(key, end)
			res.Moved = true
			if merged {
				res.Merges++
				res.Score += end.value
				if r.WinValue > 0 && end.value == r.WinValue {
					res.Won = true
					res.Board = w.board()
					return res
				}
			}
			changed = true
			break
		}
		if !changed {
			break
		}
	}

	res.Board = w.board()
	return res
}

// workTile is the per-shift record of a tile.
type workTile struct {
	pos    Cube
	value  int
	merged bool // Absorbed a merge during this shift
}

// workingSet is the resolver's scratch copy of a board.
type workingSet struct {
	dir    Direction
	radius int
	order  []string // scan order
	tiles  map[string]*workTile
}

func newWorkingSet(board Board, dir Direction, radius int) *workingSet {
	tiles := board.Tiles()
	w := &workingSet{
		dir:    dir,
		radius: radius,
		order:  make([]string, 0, len(tiles)),
		tiles:  make(map[string]*workTile, len(tiles)),
	}
	for _, t := range tiles {
		key := t.Pos.Key()
		w.order = append(w.order, key)
		w.tiles[key] = &workTile{pos: t.Pos, value: t.Value}
	}
	return w
}

// at returns the tile occupying c, or nil.
func (w *workingSet) at(c Cube) *workTile {
	return w.tiles[c.Key()]
}

// walk advances a copy of t one cell at a time until it is blocked.
// It reports whether the tile moved and whether it merged on the way.
func (w *workingSet) walk(t workTile) (end workTile, moved, merged bool) {
	for {
		nextPos := t.pos.Step(w.dir)
		next := w.at(nextPos)
		if w.blocked(t, nextPos, next) {
			return t, moved, merged
		}

		if next != nil {
			t.value *= 2
			t.merged = true
			merged = true
		}
		t.pos = nextPos
		moved = true
	}
}

// blocked reports whether t must stay in front of nextPos.
func (w *workingSet) blocked(t workTile, nextPos Cube, next *workTile) bool {
	// A tile that already merged only slides through empty cells.
	if t.merged && next != nil {
		return true
	}
	// Merged tiles can be neither absorbed nor pushed.
	if next != nil && next.merged {
		return true
	}
	if !InRange(nextPos, w.radius) {
		return true
	}
	if next != nil && next.value != t.value {
		return true
	}
	if next != nil && next.value == t.value {
		// Three in a row, or a gap behind the pair: let the far pair settle first.
		afterPos := nextPos.Step(w.dir)
		after := w.at(afterPos)
		if after != nil && after.value == t.value {
			return true
		}
		if after == nil && InRange(afterPos, w.radius) {
			return true
		}
	}
	return false
}

// apply moves the tile at oldKey to end. A tile already at the target
// keeps its scan slot and takes the new record; otherwise the target is
// appended to the scan order.
func (w *workingSet) apply(oldKey string, end workTile) {
	newKey := end.pos.Key()
	if existing, ok := w.tiles[newKey]; ok {
		*existing = end
	} else {
		rec := end
		w.tiles[newKey] = &rec
		w.order = append(w.order, newKey)
	}

	delete(w.tiles, oldKey)
	for i, k := range w.order {
		if k == oldKey {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// board formats the working set back into a Board.
func (w *workingSet) board() Board {
	out := make(Board, len(w.tiles))
	for k, t := range w.tiles {
		out[k] = t.value
	}
	return out
}
