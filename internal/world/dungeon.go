package world

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// MinSize is the smallest dimension a dungeon may have. Anything
	// smaller cannot hold a carved cell surrounded by border walls.
	MinSize = 5

	// DefaultRoomRate is the percentage of extra wall cells punched open
	// after carving to create loops and shortcuts.
	DefaultRoomRate = 20
)

// ErrNotRectangular is returned by Parse when rows differ in length.
var ErrNotRectangular = errors.New("world: grid rows have unequal lengths")

// ErrEmptyGrid is returned by Parse when given no rows or empty rows.
var ErrEmptyGrid = errors.New("world: grid has no cells")

// Dungeon represents the game map: a rectangular grid of tiles.
type Dungeon struct {
	Rows  int
	Cols  int
	Tiles [][]Tile
	rng   *rand.Rand
}

// NewDungeon creates a dungeon filled entirely with walls. Dimensions are
// coerced up to odd values of at least MinSize so the maze carver's
// odd-coordinate cell centers line up with the grid. The rng drives all
// randomness in generation; pass a seeded source for reproducible layouts.
func NewDungeon(rows, cols int, rng *rand.Rand) *Dungeon {
	rows = coerceDim(rows)
	cols = coerceDim(cols)

	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
		for c := range tiles[r] {
			tiles[r][c] = TileWall
		}
	}

	return &Dungeon{
		Rows:  rows,
		Cols:  cols,
		Tiles: tiles,
		rng:   rng,
	}
}

// coerceDim bumps a dimension to the next odd value and clamps to MinSize.
func coerceDim(n int) int {
	if n < MinSize {
		n = MinSize
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Parse builds a dungeon from its textual form: one string per row, every
// row the same length. It fails fast on malformed input rather than letting
// a later solve read out of bounds.
func Parse(lines []string) (*Dungeon, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	tiles := make([][]Tile, len(lines))
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, r, len(line), cols)
		}
		tiles[r] = make([]Tile, cols)
		for c, ch := range []byte(line) {
			tiles[r][c] = Tile(ch)
		}
	}
	return &Dungeon{Rows: len(lines), Cols: cols, Tiles: tiles}, nil
}

// Lines renders the dungeon back to its textual form.
func (d *Dungeon) Lines() []string {
	lines := make([]string, d.Rows)
	row := make([]byte, d.Cols)
	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Cols; c++ {
			row[c] = byte(d.Tiles[r][c])
		}
		lines[r] = string(row)
	}
	return lines
}

// InBounds reports whether the position lies inside the grid.
func (d *Dungeon) InBounds(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Cols
}

// At returns the tile at the given position, or a wall for any position
// outside the grid.
func (d *Dungeon) At(row, col int) Tile {
	if !d.InBounds(row, col) {
		return TileWall
	}
	return d.Tiles[row][col]
}

// IsPassable returns true if the given position can be walked on.
// Doors count as passable; key gating is the solver's concern.
func (d *Dungeon) IsPassable(row, col int) bool {
	return d.InBounds(row, col) && d.Tiles[row][col].IsPassable()
}

// Find returns the first cell holding the given tile in row-major order,
// or NoCell if the tile does not appear.
func (d *Dungeon) Find(t Tile) Cell {
	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Cols; c++ {
			if d.Tiles[r][c] == t {
				return Cell{Row: r, Col: c}
			}
		}
	}
	return NoCell
}

// Start returns the position of the start marker, or NoCell.
func (d *Dungeon) Start() Cell {
	return d.Find(TileStart)
}

// Exit returns the position of the exit marker, or NoCell.
func (d *Dungeon) Exit() Cell {
	return d.Find(TileExit)
}
