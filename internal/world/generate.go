package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
)

// Generate carves the dungeon layout using recursive backtracking, then
// punches extra openings and places the start and exit markers.
//
// The carver works on odd-coordinate cell centers separated by wall lines:
// from each cell it looks two steps away in a shuffled order, and wherever
// the far cell is still solid it opens both the far cell and the wall
// between, then continues from there. Exhausted cells unwind to the cell
// that discovered them. Until roomRate-driven punching runs, the result is
// a perfect maze: exactly one route between any two carved cells.
//
// roomRate is the percentage of extra openings to punch afterwards; 0 keeps
// the maze perfect, larger values add loops and shortcuts.
func (d *Dungeon) Generate(ctx context.Context, roomRate int) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d.carve(Cell{Row: 1, Col: 1})
	punched := d.punchRooms(roomRate)
	d.placeEndpoints()

	span.SetAttributes(
		attribute.Int("dungeon.rows", d.Rows),
		attribute.Int("dungeon.cols", d.Cols),
		attribute.Int("dungeon.room_rate", roomRate),
		attribute.Int("dungeon.punched", punched),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// carveFrame holds one suspended position of the backtracking walk: the
// cell being expanded and which of its shuffled directions come next.
type carveFrame struct {
	cell Cell
	dirs [4]Direction
	next int
}

// carve runs the backtracking walk from origin using an explicit frame
// stack. The stack depth is bounded by the number of carveable cells, so
// large grids cannot blow the call stack the way direct recursion would.
func (d *Dungeon) carve(origin Cell) {
	d.Tiles[origin.Row][origin.Col] = TileFloor

	stack := make([]carveFrame, 0, (d.Rows/2)*(d.Cols/2))
	stack = append(stack, carveFrame{cell: origin, dirs: d.shuffledDirections()})

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		advanced := false
		for frame.next < len(frame.dirs) {
			dir := frame.dirs[frame.next]
			frame.next++

			target := Cell{Row: frame.cell.Row + 2*dir.DR, Col: frame.cell.Col + 2*dir.DC}
			if !d.carveable(target) || d.Tiles[target.Row][target.Col] != TileWall {
				continue
			}

			// Open the far cell and the wall between.
			d.Tiles[target.Row][target.Col] = TileFloor
			d.Tiles[frame.cell.Row+dir.DR][frame.cell.Col+dir.DC] = TileFloor

			stack = append(stack, carveFrame{cell: target, dirs: d.shuffledDirections()})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// carveable reports whether the cell is an interior odd-coordinate cell
// center, the only positions the maze walk may occupy.
func (d *Dungeon) carveable(c Cell) bool {
	return c.Row > 0 && c.Row < d.Rows-1 &&
		c.Col > 0 && c.Col < d.Cols-1 &&
		c.Row%2 == 1 && c.Col%2 == 1
}

// shuffledDirections returns the four cardinal directions in Fisher-Yates
// shuffled order.
func (d *Dungeon) shuffledDirections() [4]Direction {
	dirs := Directions
	d.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// punchRooms converts random interior wall cells to floor, deliberately
// breaking the single-path property to create loops. The budget is
// proportional to the cell count and to roomRate, capped only by how many
// random picks land on walls. Returns the number of cells opened.
func (d *Dungeon) punchRooms(roomRate int) int {
	if roomRate <= 0 {
		return 0
	}
	cells := ((d.Rows - 1) / 2) * ((d.Cols - 1) / 2)
	budget := cells * roomRate / 100

	punched := 0
	for i := 0; i < budget; i++ {
		r := 1 + d.rng.Intn(d.Rows-2)
		c := 1 + d.rng.Intn(d.Cols-2)
		if d.Tiles[r][c] == TileWall {
			d.Tiles[r][c] = TileFloor
			punched++
		}
	}
	return punched
}

// placeEndpoints marks the start at the carve origin and the exit at the
// first open cell scanning inward from the opposite corner, keeping the two
// as far apart as the scan order allows. If the scan finds nothing open the
// interior corner is forced open as a fallback.
func (d *Dungeon) placeEndpoints() {
	d.Tiles[1][1] = TileStart

	for r := d.Rows - 2; r > 0; r-- {
		for c := d.Cols - 2; c > 0; c-- {
			if d.Tiles[r][c] == TileFloor {
				d.Tiles[r][c] = TileExit
				return
			}
		}
	}
	d.Tiles[d.Rows-2][d.Cols-2] = TileExit
}
