// Package solver implements shortest-path search over a dungeon grid.
//
// Two searches are provided: Solve, a plain breadth-first search that treats
// every door as sealed, and SolveKeys, which searches the larger space of
// position plus collected keys so that locked doors can be opened by
// fetching their key first.
package solver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// Solve returns the shortest path from the start marker to the exit marker,
// moving one cardinal step at a time through open cells. Doors are treated
// as walls here; routes that need a key require SolveKeys. The result runs
// from start to exit inclusive, or is nil when either marker is missing or
// no route exists.
func Solve(ctx context.Context, d *world.Dungeon) []world.Cell {
	tracer := telemetry.Tracer("solver")
	_, span := tracer.Start(ctx, "solver.bfs")
	defer span.End()

	start, exit := d.Start(), d.Exit()
	if !start.Valid() || !exit.Valid() {
		span.SetAttributes(attribute.Bool("solver.missing_endpoint", true))
		return nil
	}

	queue := []world.Cell{start}
	visited := map[world.Cell]bool{start: true}
	parent := make(map[world.Cell]world.Cell)
	expanded := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		if cur == exit {
			path := rebuildPath(parent, start, cur)
			span.SetAttributes(
				attribute.Int("solver.path_length", len(path)),
				attribute.Int("solver.cells_expanded", expanded),
			)
			return path
		}

		for _, dir := range world.Directions {
			next := cur.Step(dir)
			tile := d.At(next.Row, next.Col)
			if !tile.IsPassable() || tile.IsDoor() || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	span.SetAttributes(
		attribute.Int("solver.path_length", 0),
		attribute.Int("solver.cells_expanded", expanded),
	)
	return nil
}

// rebuildPath walks the first-discovery parent links from goal back to
// start and reverses the result. BFS records each cell's parent exactly
// once, so the walk always terminates at start.
func rebuildPath(parent map[world.Cell]world.Cell, start, goal world.Cell) []world.Cell {
	path := []world.Cell{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
