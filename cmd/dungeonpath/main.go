// Package main is the entry point for dungeonpath.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/viewer"
	"github.com/samdwyer/dungeonpath/internal/world"
)

func main() {
	rows := flag.Int("rows", 21, "dungeon rows (coerced odd, min 5)")
	cols := flag.Int("cols", 41, "dungeon columns (coerced odd, min 5)")
	roomRate := flag.Int("rooms", world.DefaultRoomRate, "percentage of extra openings punched after carving")
	keyPairs := flag.Int("keys", 2, "key/door pairs to place (0-6)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	printMode := flag.Bool("print", false, "generate, solve, and print to stdout instead of the interactive view")
	flag.Parse()

	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := viewer.Config{
		Seed:     *seed,
		Rows:     *rows,
		Cols:     *cols,
		RoomRate: *roomRate,
		KeyPairs: *keyPairs,
	}

	if *printMode {
		printRun(ctx, cfg)
		return
	}

	v, err := viewer.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}
	if err := v.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// printRun generates one dungeon, solves it, and writes both the bare grid
// and the route overlay to stdout. Used where no tty is available.
func printRun(ctx context.Context, cfg viewer.Config) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d := world.NewDungeon(cfg.Rows, cfg.Cols, rng)
	d.Generate(ctx, cfg.RoomRate)
	if cfg.KeyPairs > 0 {
		solver.PlaceKeyDoors(ctx, d, rng, cfg.KeyPairs)
	}

	fmt.Printf("seed %d\n", seed)
	for _, line := range d.Lines() {
		fmt.Println(line)
	}

	route := solver.SolveKeys(ctx, d)
	if route == nil {
		fmt.Println("no path")
		return
	}
	fmt.Printf("path: %d steps\n", len(route))
	for _, line := range overlay(d, route) {
		fmt.Println(line)
	}
}

// overlay marks the route on a copy of the grid, keeping markers and keys
// visible underneath.
func overlay(d *world.Dungeon, route []world.Cell) []string {
	lines := d.Lines()
	for _, c := range route {
		row := []byte(lines[c.Row])
		if world.Tile(row[c.Col]) == world.TileFloor {
			row[c.Col] = '*'
		}
		lines[c.Row] = string(row)
	}
	return lines
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers from our API key rather than trusting an
	// unexpanded variable reference in the .env file.
	apiKey := os.Getenv("HONEYCOMB_DUNGEONPATH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONPATH_DATASET")
	if dataset == "" {
		dataset = "dungeonpath" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
