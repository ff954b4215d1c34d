package world

// Cell identifies a single grid position by row and column.
// It is a plain value: copy freely, compare with ==, use as a map key.
type Cell struct {
	Row, Col int
}

// NoCell is the sentinel returned by lookups that find nothing.
var NoCell = Cell{Row: -1, Col: -1}

// Valid reports whether the cell is a real position rather than the
// not-found sentinel.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Step returns the cell one grid step away in the given direction.
func (c Cell) Step(d Direction) Cell {
	return Cell{Row: c.Row + d.DR, Col: c.Col + d.DC}
}

// Direction is a cardinal unit step on the grid.
type Direction struct {
	DR, DC int
}

// Directions lists the four cardinal moves in the fixed expansion order
// used by both the generator and the pathfinders: up, down, left, right.
var Directions = [4]Direction{
	{DR: -1, DC: 0},
	{DR: 1, DC: 0},
	{DR: 0, DC: -1},
	{DR: 0, DC: 1},
}
