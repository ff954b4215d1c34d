package viewer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonpath/data"
	"github.com/samdwyer/dungeonpath/internal/solver"
	"github.com/samdwyer/dungeonpath/internal/telemetry"
	"github.com/samdwyer/dungeonpath/internal/ui"
	"github.com/samdwyer/dungeonpath/internal/world"
)

// generated marks that the viewer is showing a generated dungeon rather
// than one of the embedded demos.
const generated = -1

// Viewer owns the terminal session: the current dungeon, the solved route,
// and the event loop that reacts to key presses.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	rng      *rand.Rand

	dungeon *world.Dungeon
	route   []world.Cell
	mode    SolveMode

	demos   []data.DemoDef
	demoIdx int // index into demos, or generated

	running bool
}

// New creates a viewer with an initialized terminal screen.
func New(cfg Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		mode:     ModeKeys,
		demos:    data.MustLoadDemos(),
		demoIdx:  generated,
		running:  true,
	}, nil
}

// Run executes the main event loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")

	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	v.regenerate(ctx)
	initSpan.SetAttributes(
		attribute.Int("dungeon.rows", v.dungeon.Rows),
		attribute.Int("dungeon.cols", v.dungeon.Cols),
		attribute.Int("route.length", len(v.route)),
	)
	initSpan.End()

	for v.running {
		v.renderer.Render(v.dungeon, v.route)
		v.renderer.RenderMessage(v.statusLine(), v.dungeon.Rows+1)
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerate(ctx)
		case 'm', 'M':
			v.toggleMode(ctx)
		case 'd', 'D':
			v.nextDemo(ctx)
		case 'g', 'G':
			if v.demoIdx != generated {
				v.regenerate(ctx)
			}
		}
	}
}

// regenerate replaces the current dungeon with a freshly generated one and
// re-solves it.
func (v *Viewer) regenerate(ctx context.Context) {
	v.demoIdx = generated
	v.dungeon = world.NewDungeon(v.cfg.Rows, v.cfg.Cols, v.rng)
	v.dungeon.Generate(ctx, v.cfg.RoomRate)
	if v.cfg.KeyPairs > 0 {
		solver.PlaceKeyDoors(ctx, v.dungeon, v.rng, v.cfg.KeyPairs)
	}
	v.resolve(ctx)
}

// nextDemo cycles through the embedded demo dungeons.
func (v *Viewer) nextDemo(ctx context.Context) {
	if len(v.demos) == 0 {
		return
	}
	v.demoIdx = (v.demoIdx + 1) % len(v.demos)
	d, err := world.Parse(v.demos[v.demoIdx].Grid)
	if err != nil {
		// Embedded demos are validated by tests; skip a bad one anyway.
		return
	}
	v.dungeon = d
	v.resolve(ctx)
}

// toggleMode switches between the basic and key-aware solver.
func (v *Viewer) toggleMode(ctx context.Context) {
	if v.mode == ModeBasic {
		v.mode = ModeKeys
	} else {
		v.mode = ModeBasic
	}
	v.resolve(ctx)
}

// resolve runs the selected solver on the current dungeon.
func (v *Viewer) resolve(ctx context.Context) {
	if v.mode == ModeKeys {
		v.route = solver.SolveKeys(ctx, v.dungeon)
	} else {
		v.route = solver.Solve(ctx, v.dungeon)
	}
}

// statusLine summarizes the current view for the message row.
func (v *Viewer) statusLine() string {
	source := "generated"
	if v.demoIdx != generated {
		source = "demo: " + v.demos[v.demoIdx].Name
	}
	result := "no path"
	if len(v.route) > 0 {
		result = fmt.Sprintf("path %d steps", len(v.route))
	}
	return fmt.Sprintf("[%s] solver=%s %s | r:new m:mode d:demo g:generated q:quit",
		source, v.mode, result)
}
