package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	lines := []string{
		"#######",
		"#S a E#",
		"###A###",
		"#     #",
		"#######",
	}

	d, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Rows != 5 || d.Cols != 7 {
		t.Fatalf("Dimensions = %dx%d, want 5x7", d.Rows, d.Cols)
	}

	got := d.Lines()
	for i, line := range got {
		if line != lines[i] {
			t.Errorf("Row %d = %q, want %q", i, line, lines[i])
		}
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	_, err := Parse([]string{"#####", "##"})
	if !errors.Is(err, ErrNotRectangular) {
		t.Errorf("Parse error = %v, want ErrNotRectangular", err)
	}
}

func TestParseRejectsEmptyGrid(t *testing.T) {
	for _, lines := range [][]string{nil, {}, {""}} {
		if _, err := Parse(lines); !errors.Is(err, ErrEmptyGrid) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyGrid", lines, err)
		}
	}
}

func TestFindRowMajorFirstMatch(t *testing.T) {
	d, err := Parse([]string{
		"## ##",
		"#a#a#",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := d.Find(Tile('a')); got != (Cell{Row: 1, Col: 1}) {
		t.Errorf("Find('a') = %v, want (1,1)", got)
	}
	if got := d.Find(TileStart); got != NoCell {
		t.Errorf("Find('S') = %v, want NoCell", got)
	}
	if NoCell.Valid() {
		t.Error("NoCell should not be Valid")
	}
}

func TestAtOutOfBoundsIsWall(t *testing.T) {
	d, err := Parse([]string{"   "})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, pos := range []Cell{{-1, 0}, {0, -1}, {1, 0}, {0, 3}} {
		if got := d.At(pos.Row, pos.Col); got != TileWall {
			t.Errorf("At(%d,%d) = %q, want wall", pos.Row, pos.Col, got)
		}
		if d.IsPassable(pos.Row, pos.Col) {
			t.Errorf("IsPassable(%d,%d) = true, want false", pos.Row, pos.Col)
		}
	}
}

func TestNewDungeonCoercesDimensions(t *testing.T) {
	cases := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{4, 4, 5, 5},
		{0, 0, 5, 5},
		{5, 5, 5, 5},
		{10, 10, 11, 11},
		{9, 12, 9, 13},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range cases {
		d := NewDungeon(tc.rows, tc.cols, rng)
		if d.Rows != tc.wantRows || d.Cols != tc.wantCols {
			t.Errorf("NewDungeon(%d,%d) = %dx%d, want %dx%d",
				tc.rows, tc.cols, d.Rows, d.Cols, tc.wantRows, tc.wantCols)
		}
	}
}

func TestTileDoorGating(t *testing.T) {
	door := Tile('C')
	if door.CanPass(0) {
		t.Error("Door 'C' should be locked with no keys")
	}
	if door.CanPass(1 << 0) {
		t.Error("Door 'C' should not open with key 'a'")
	}
	if !door.CanPass(1 << 2) {
		t.Error("Door 'C' should open with key 'c'")
	}

	// Non-door tiles never require keys.
	for _, tile := range []Tile{TileFloor, TileStart, TileExit, Tile('a')} {
		if !tile.CanPass(0) {
			t.Errorf("Tile %q should be passable with no keys", tile)
		}
	}
}

func TestTileKeyCollection(t *testing.T) {
	mask := 0
	mask = Tile('a').Collect(mask)
	if mask != 1 {
		t.Errorf("Collect('a') = %#b, want 1", mask)
	}
	mask = Tile('f').Collect(mask)
	if mask != 1|1<<5 {
		t.Errorf("Collect('f') = %#b, want bits 0 and 5", mask)
	}

	// Collecting an already-held key and stepping off keys are no-ops.
	if got := Tile('a').Collect(mask); got != mask {
		t.Errorf("Re-collecting 'a' changed mask to %#b", got)
	}
	if got := TileFloor.Collect(mask); got != mask {
		t.Errorf("Floor changed mask to %#b", got)
	}
}
