package solver

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// attemptsPerPair bounds how many door/key sites are tried for one pair
// before giving up on it.
const attemptsPerPair = 8

// PlaceKeyDoors drops up to pairs key/door pairs onto a solvable dungeon:
// each door lands on a floor cell of the current shortest route and its key
// on a floor cell reachable from the start without crossing any door.
// Every placement is verified with SolveKeys and rolled back if it would
// make the dungeon unsolvable, so the dungeon stays solvable throughout.
// Returns the number of pairs actually placed.
func PlaceKeyDoors(ctx context.Context, d *world.Dungeon, rng *rand.Rand, pairs int) int {
	tracer := telemetry.Tracer("solver")
	ctx, span := tracer.Start(ctx, "solver.place_key_doors")
	defer span.End()

	if pairs > 6 {
		pairs = 6
	}

	placed := 0
	for bit := 0; bit < pairs; bit++ {
		door := world.Tile('A' + bit)
		key := world.Tile('a' + bit)
		if d.Find(door).Valid() || d.Find(key).Valid() {
			continue
		}
		if placePair(ctx, d, rng, door, key) {
			placed++
		}
	}

	span.SetAttributes(
		attribute.Int("solver.pairs_requested", pairs),
		attribute.Int("solver.pairs_placed", placed),
	)
	return placed
}

// placePair tries a handful of door/key sites for one pair, keeping the
// first combination that leaves the dungeon solvable.
func placePair(ctx context.Context, d *world.Dungeon, rng *rand.Rand, door, key world.Tile) bool {
	for attempt := 0; attempt < attemptsPerPair; attempt++ {
		route := SolveKeys(ctx, d)
		if len(route) < 3 {
			return false
		}

		doorCell, ok := pickFloor(d, rng, route[1:len(route)-1])
		if !ok {
			return false
		}
		d.Tiles[doorCell.Row][doorCell.Col] = door

		keyCell, ok := pickFloor(d, rng, reachableWithoutDoors(d))
		if !ok {
			d.Tiles[doorCell.Row][doorCell.Col] = world.TileFloor
			return false
		}
		d.Tiles[keyCell.Row][keyCell.Col] = key

		if SolveKeys(ctx, d) != nil {
			return true
		}

		d.Tiles[doorCell.Row][doorCell.Col] = world.TileFloor
		d.Tiles[keyCell.Row][keyCell.Col] = world.TileFloor
	}
	return false
}

// pickFloor picks a uniformly random plain floor cell from candidates,
// skipping markers, keys, and doors already on the grid.
func pickFloor(d *world.Dungeon, rng *rand.Rand, candidates []world.Cell) (world.Cell, bool) {
	floors := make([]world.Cell, 0, len(candidates))
	for _, c := range candidates {
		if d.At(c.Row, c.Col) == world.TileFloor {
			floors = append(floors, c)
		}
	}
	if len(floors) == 0 {
		return world.NoCell, false
	}
	return floors[rng.Intn(len(floors))], true
}

// reachableWithoutDoors flood-fills from the start marker treating every
// door as sealed, returning the visited cells. A key placed in this region
// can always be collected before its door matters.
func reachableWithoutDoors(d *world.Dungeon) []world.Cell {
	start := d.Start()
	if !start.Valid() {
		return nil
	}

	queue := []world.Cell{start}
	visited := map[world.Cell]bool{start: true}
	cells := []world.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range world.Directions {
			next := cur.Step(dir)
			tile := d.At(next.Row, next.Col)
			if !tile.IsPassable() || tile.IsDoor() || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
			cells = append(cells, next)
		}
	}
	return cells
}
