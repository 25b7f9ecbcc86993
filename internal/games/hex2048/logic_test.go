package hex2048

import (
	"math/rand"
	"testing"
)

// line returns the z=0 row of a radius-3 board, walking south-east.
func line() []Cube {
	return []Cube{C(-2, 2, 0), C(-1, 1, 0), C(0, 0, 0), C(1, -1, 0), C(2, -2, 0)}
}

func TestShiftPairMergesAtWall(t *testing.T) {
	board := NewBoard(Tile{C(0, 0, 0), 2}, Tile{C(1, -1, 0), 2})

	res := ResolveShift(board, NW, 2, DefaultWinValue)
	want := NewBoard(Tile{C(-1, 1, 0), 4})

	if !res.Moved {
		t.Error("shift should report movement")
	}
	if !res.Board.Equal(want) {
		t.Errorf("board = %v, want %v", res.Board, want)
	}
	if res.Merges != 1 || res.Score != 4 {
		t.Errorf("merges=%d score=%d, want 1 and 4", res.Merges, res.Score)
	}
}

func TestShiftPairMergesAgainstBlocker(t *testing.T) {
	board := NewBoard(
		Tile{C(-1, 1, 0), 8},
		Tile{C(0, 0, 0), 2},
		Tile{C(1, -1, 0), 2},
	)

	res := ResolveShift(board, NW, 2, DefaultWinValue)
	want := NewBoard(Tile{C(-1, 1, 0), 8}, Tile{C(0, 0, 0), 4})

	if !res.Moved || !res.Board.Equal(want) {
		t.Errorf("board = %v (moved=%v), want %v", res.Board, res.Moved, want)
	}
}

func TestShiftThreeInARow(t *testing.T) {
	l := line()
	tests := []struct {
		name  string
		tiles []Cube
	}{
		{"against the far end", []Cube{l[0], l[1], l[2]}},
		{"packed at the wall", []Cube{l[2], l[3], l[4]}},
		{"spread out", []Cube{l[0], l[2], l[4]}},
	}

	want := NewBoard(Tile{l[3], 2}, Tile{l[4], 4})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Board{}
			for _, c := range tt.tiles {
				board.Put(c, 2)
			}

			res := ResolveShift(board, SE, 3, DefaultWinValue)
			if !res.Board.Equal(want) {
				t.Fatalf("board = %v, want %v", res.Board, want)
			}
			if res.Merges != 1 {
				t.Errorf("merges = %d, want 1", res.Merges)
			}

			again := ResolveShift(res.Board, SE, 3, DefaultWinValue)
			if again.Moved {
				t.Error("second shift in the same direction should not move")
			}
			if !again.Board.Equal(res.Board) {
				t.Errorf("second shift changed board to %v", again.Board)
			}
		})
	}
}

func TestShiftFourInARow(t *testing.T) {
	l := line()
	board := NewBoard(Tile{l[1], 2}, Tile{l[2], 2}, Tile{l[3], 2}, Tile{l[4], 2})

	res := ResolveShift(board, SE, 3, DefaultWinValue)
	want := NewBoard(Tile{l[3], 4}, Tile{l[4], 4})

	if !res.Board.Equal(want) {
		t.Errorf("board = %v, want %v", res.Board, want)
	}
	if res.Merges != 2 || res.Score != 8 {
		t.Errorf("merges=%d score=%d, want 2 and 8", res.Merges, res.Score)
	}
}

func TestShiftMergedTileDoesNotMergeAgain(t *testing.T) {
	l := line()
	board := NewBoard(Tile{l[2], 2}, Tile{l[3], 2}, Tile{l[4], 4})

	res := ResolveShift(board, SE, 3, DefaultWinValue)
	want := NewBoard(Tile{l[3], 4}, Tile{l[4], 4})

	if !res.Board.Equal(want) {
		t.Errorf("board = %v, want %v", res.Board, want)
	}
	if res.Merges != 1 {
		t.Errorf("merges = %d, want 1", res.Merges)
	}
}

func TestShiftSlideToWall(t *testing.T) {
	board := NewBoard(Tile{C(0, 0, 0), 2})

	tests := []struct {
		dir  Direction
		want Cube
	}{
		{NW, C(-2, 2, 0)},
		{N, C(0, 2, -2)},
		{NE, C(2, 0, -2)},
		{SW, C(-2, 0, 2)},
		{S, C(0, -2, 2)},
		{SE, C(2, -2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			res := ResolveShift(board, tt.dir, 3, DefaultWinValue)
			if !res.Moved {
				t.Fatal("lone tile should move")
			}
			if res.Board.Get(tt.want) != 2 || res.Board.Count() != 1 {
				t.Errorf("board = %v, want single 2 at %v", res.Board, tt.want)
			}
			if res.Merges != 0 || res.Score != 0 {
				t.Errorf("slide should not score: merges=%d score=%d", res.Merges, res.Score)
			}
		})
	}
}

func TestShiftWinReturnsImmediately(t *testing.T) {
	board := NewBoard(
		Tile{C(-2, 2, 0), 1024},
		Tile{C(-1, 1, 0), 1024},
		Tile{C(1, 0, -1), 8},
		Tile{C(2, -2, 0), 2},
	)

	res := ResolveShift(board, NW, 3, 2048)
	want := NewBoard(
		Tile{C(-2, 2, 0), 2048},
		Tile{C(1, 0, -1), 8},
		Tile{C(2, -2, 0), 2},
	)

	if !res.Won || !res.Moved {
		t.Fatalf("won=%v moved=%v, want both true", res.Won, res.Moved)
	}
	if !res.Board.Equal(want) {
		t.Errorf("board = %v, want %v", res.Board, want)
	}

	// Without a win value the remaining tiles keep moving.
	res = ResolveShift(board, NW, 3, 0)
	want = NewBoard(
		Tile{C(-2, 2, 0), 2048},
		Tile{C(-1, 1, 0), 2},
		Tile{C(-1, 2, -1), 8},
	)
	if res.Won {
		t.Error("win value 0 should never report a win")
	}
	if !res.Board.Equal(want) {
		t.Errorf("board = %v, want %v", res.Board, want)
	}
}

func TestShiftSlidingWinTileIsNotAWin(t *testing.T) {
	board := NewBoard(Tile{C(0, 0, 0), 2048})

	res := ResolveShift(board, N, 3, 2048)
	if !res.Moved {
		t.Error("tile should slide")
	}
	if res.Won {
		t.Error("sliding an existing win tile should not report a win")
	}
}

func TestShiftDoesNotMutateInput(t *testing.T) {
	board := NewBoard(Tile{C(0, 0, 0), 2}, Tile{C(1, -1, 0), 2}, Tile{C(0, 1, -1), 4})
	before := board.Clone()

	for _, d := range Directions() {
		ResolveShift(board, d, 3, DefaultWinValue)
	}
	if !board.Equal(before) {
		t.Errorf("input board changed to %v", board)
	}
}

// fullDistinct fills every cell of a radius-2 board with distinct values.
func fullDistinct() Board {
	board := Board{}
	v := 2
	for _, c := range FieldCoords(2) {
		board.Put(c, v)
		v *= 2
	}
	return board
}

func TestBlockedBoard(t *testing.T) {
	board := fullDistinct()

	if HasAnyMove(board, 2, DefaultWinValue) {
		t.Error("HasAnyMove should be false for a full board of distinct values")
	}
	r := NewResolver(2, DefaultWinValue)
	if dirs := r.AvailableDirections(board); len(dirs) != 0 {
		t.Errorf("AvailableDirections = %v, want none", dirs)
	}
	for _, d := range Directions() {
		res := r.Shift(board, d)
		if res.Moved || res.Won || res.Merges != 0 {
			t.Errorf("%v: moved=%v won=%v merges=%d on a blocked board", d, res.Moved, res.Won, res.Merges)
		}
		if !res.Board.Equal(board) {
			t.Errorf("%v changed a blocked board", d)
		}
	}
}

func TestHasAnyMoveFullBoardWithPair(t *testing.T) {
	board := fullDistinct()
	board.Put(C(0, 0, 0), 2)
	board.Put(C(-1, 1, 0), 2)

	r := NewResolver(2, DefaultWinValue)
	if !r.HasAnyMove(board) {
		t.Fatal("a full board with an adjacent pair has a move")
	}

	dirs := r.AvailableDirections(board)
	has := map[Direction]bool{}
	for _, d := range dirs {
		has[d] = true
	}
	if !has[NW] || !has[SE] {
		t.Errorf("AvailableDirections = %v, want NW and SE among them", dirs)
	}
}

func TestEmptyBoard(t *testing.T) {
	res := ResolveShift(Board{}, N, 3, DefaultWinValue)
	if res.Moved || res.Board.Count() != 0 {
		t.Errorf("empty board: moved=%v board=%v", res.Moved, res.Board)
	}
	if res.Board == nil {
		t.Error("result board should be a non-nil map")
	}
}

func randomBoard(rng *rand.Rand, radius int) Board {
	values := []int{2, 2, 2, 4, 4, 8, 16}
	board := Board{}
	for _, c := range FieldCoords(radius) {
		if rng.Intn(3) > 0 {
			board.Put(c, values[rng.Intn(len(values))])
		}
	}
	return board
}

func TestShiftInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for radius := 2; radius <= 7; radius++ {
		for i := 0; i < 40; i++ {
			board := randomBoard(rng, radius)
			for _, d := range Directions() {
				res := ResolveShift(board, d, radius, 0)

				if err := res.Board.Validate(radius); err != nil {
					t.Fatalf("radius %d %v: invalid result: %v", radius, d, err)
				}
				if got, want := res.Board.Count(), board.Count()-res.Merges; got != want {
					t.Fatalf("radius %d %v: %d tiles after %d merges from %d", radius, d, got, res.Merges, board.Count())
				}
				if res.Board.Sum() != board.Sum() {
					t.Fatalf("radius %d %v: sum %d, want %d", radius, d, res.Board.Sum(), board.Sum())
				}
				if res.Moved == res.Board.Equal(board) && res.Merges == 0 {
					t.Fatalf("radius %d %v: moved=%v disagrees with board change", radius, d, res.Moved)
				}

				again := ResolveShift(board, d, radius, 0)
				if !again.Board.Equal(res.Board) || again.Score != res.Score {
					t.Fatalf("radius %d %v: resolution is not deterministic", radius, d)
				}

				settled := ResolveShift(res.Board, d, radius, 0)
				if settled.Merges == 0 && settled.Moved {
					t.Fatalf("radius %d %v: tiles still slide after a settled shift", radius, d)
				}
			}
		}
	}
}

func TestHasAnyMoveAgreesWithShift(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		radius := 2 + rng.Intn(2)
		board := Board{}
		for _, c := range FieldCoords(radius) {
			board.Put(c, 1<<(1+rng.Intn(4)))
		}

		r := NewResolver(radius, DefaultWinValue)
		movable := r.HasAnyMove(board)
		if movable != (len(r.AvailableDirections(board)) > 0) {
			t.Fatalf("HasAnyMove=%v disagrees with AvailableDirections", movable)
		}
		if !movable {
			for _, d := range Directions() {
				if !r.Shift(board, d).Board.Equal(board) {
					t.Fatalf("no move reported but %v changes the board", d)
				}
			}
		}
	}
}
