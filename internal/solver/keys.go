package solver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// state is one node of the key-aware search: a position plus the set of
// keys collected on every route reaching it. The same cell with a
// different key set is a different node, which is what lets a route
// backtrack through already-seen cells after picking up a key. The struct
// is comparable, so it serves directly as a map key.
type state struct {
	pos  world.Cell
	keys int
}

// SolveKeys returns the shortest path from start to exit where doors
// 'A'-'F' may only be crossed after stepping on the matching key 'a'-'f'.
// Stepping on a key collects it implicitly; keys are never dropped. The
// goal test is position-only: any key set at the exit cell counts. The
// result carries just cell positions, or is nil when either marker is
// missing or no route exists under key gating.
func SolveKeys(ctx context.Context, d *world.Dungeon) []world.Cell {
	tracer := telemetry.Tracer("solver")
	_, span := tracer.Start(ctx, "solver.bfs_keys")
	defer span.End()

	start, exit := d.Start(), d.Exit()
	if !start.Valid() || !exit.Valid() {
		span.SetAttributes(attribute.Bool("solver.missing_endpoint", true))
		return nil
	}

	origin := state{pos: start}
	queue := []state{origin}
	visited := map[state]bool{origin: true}
	parent := make(map[state]state)
	expanded := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		if cur.pos == exit {
			path := rebuildStatePath(parent, origin, cur)
			span.SetAttributes(
				attribute.Int("solver.path_length", len(path)),
				attribute.Int("solver.states_expanded", expanded),
			)
			return path
		}

		for _, dir := range world.Directions {
			nextPos := cur.pos.Step(dir)
			tile := d.At(nextPos.Row, nextPos.Col)
			if !tile.IsPassable() || !tile.CanPass(cur.keys) {
				continue
			}
			next := state{pos: nextPos, keys: tile.Collect(cur.keys)}
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	span.SetAttributes(
		attribute.Int("solver.path_length", 0),
		attribute.Int("solver.states_expanded", expanded),
	)
	return nil
}

// rebuildStatePath walks the state parent links from goal back to the
// origin state, keeping only the cell component of each state.
func rebuildStatePath(parent map[state]state, origin, goal state) []world.Cell {
	path := []world.Cell{goal.pos}
	for cur := goal; cur != origin; {
		cur = parent[cur]
		path = append(path, cur.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableKeys returns how many distinct keys can be stepped on from the
// start marker when doors are ignored entirely. It is a plain flood fill,
// useful for sizing how much of a dungeon's key set is even collectible.
func ReachableKeys(d *world.Dungeon) int {
	start := d.Start()
	if !start.Valid() {
		return 0
	}

	queue := []world.Cell{start}
	visited := map[world.Cell]bool{start: true}
	keys := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		keys = d.At(cur.Row, cur.Col).Collect(keys)

		for _, dir := range world.Directions {
			next := cur.Step(dir)
			if !d.IsPassable(next.Row, next.Col) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	count := 0
	for ; keys != 0; keys &= keys - 1 {
		count++
	}
	return count
}
