package solver

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonpath/internal/world"
)

// ErrEmptyPath is returned by ValidatePath for a path with no cells.
var ErrEmptyPath = errors.New("solver: path is empty")

// ErrBadEndpoint is returned when a path does not run start to exit.
var ErrBadEndpoint = errors.New("solver: path endpoints do not match markers")

// ErrThroughWall is returned when a path visits a wall cell.
var ErrThroughWall = errors.New("solver: path crosses a wall")

// ErrBrokenStep is returned when consecutive path cells are not exactly
// one cardinal step apart.
var ErrBrokenStep = errors.New("solver: path step is not a single cardinal move")

// ValidatePath checks that a path is walkable on the given dungeon: it
// must begin at the start marker, end at the exit marker, advance one
// cardinal step at a time, and never touch a wall. Door gating is not
// re-checked here; use it for paths produced by either solver.
func ValidatePath(d *world.Dungeon, path []world.Cell) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	start, exit := d.Start(), d.Exit()
	if !start.Valid() || !exit.Valid() {
		return ErrBadEndpoint
	}
	if path[0] != start || path[len(path)-1] != exit {
		return ErrBadEndpoint
	}

	for i, cell := range path {
		if !d.IsPassable(cell.Row, cell.Col) {
			return fmt.Errorf("%w: at (%d,%d)", ErrThroughWall, cell.Row, cell.Col)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr := abs(cell.Row - prev.Row)
		dc := abs(cell.Col - prev.Col)
		if dr+dc != 1 {
			return fmt.Errorf("%w: step %d from (%d,%d) to (%d,%d)", ErrBrokenStep, i, prev.Row, prev.Col, cell.Row, cell.Col)
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
