// Package game wires the board, selection controller, and terminal UI into
// an interactive session and runs the main event loop.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tacband/internal/board"
	"github.com/samdwyer/tacband/internal/entity"
	"github.com/samdwyer/tacband/internal/grid"
	"github.com/samdwyer/tacband/internal/tactics"
	"github.com/samdwyer/tacband/internal/telemetry"
	"github.com/samdwyer/tacband/internal/ui"
	"github.com/samdwyer/tacband/internal/unitdata"
)

// Game holds the entire session state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	overlay  *ui.HighlightOverlay
	preview  *ui.PathPreview
	area     grid.Rect
	board    *board.State
	roster   *entity.Roster
	ctrl     *tactics.Controller
	registry *unitdata.Registry
	rng      *rand.Rand

	lastButtons tcell.ButtonMask
	running     bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()

	registry, err := unitdata.LoadRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		overlay:  &ui.HighlightOverlay{},
		preview:  &ui.PathPreview{},
		area:     grid.Rect{Width: cfg.Width, Height: cfg.Height},
		board:    board.NewState(),
		roster:   entity.NewRoster(),
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
		running:  true,
	}
	g.renderer = ui.NewRenderer(screen, g.overlay, g.preview, registry)
	g.ctrl = tactics.NewController(g.board, g.area, g.walkerByID, g.overlay, g.preview, g.notifySettled)
	return g, nil
}

// Run executes the main event loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.placeUnits()

	occupants := make([]board.Occupant, 0, g.roster.Len())
	for _, u := range g.roster.Units() {
		occupants = append(occupants, u)
	}
	g.board.Reinitialize(occupants)

	initSpan.SetAttributes(
		attribute.Int("board.width", g.area.Width),
		attribute.Int("board.height", g.area.Height),
		attribute.Int("board.units", g.roster.Len()),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.area, g.roster, g.statusLine())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// placeUnits spawns the configured number of units on random free cells.
func (g *Game) placeUnits() {
	taken := make(grid.Set)
	for i := 0; i < g.cfg.Units; i++ {
		def := g.registry.SpawnRandom(g.rng)
		if def == nil {
			return
		}
		cell, ok := g.randomFreeCell(taken)
		if !ok {
			return // board is full
		}
		taken.Add(cell)

		unit := entity.NewUnit(def.Name, cell, def.MoveRange)
		unit.InitFromDef(def)
		unit.OnStep(func() {
			g.screen.Post(ui.NewEventRefresh())
		})
		g.roster.Add(unit)
	}
}

// randomFreeCell picks a random cell not in taken (max 100 attempts).
func (g *Game) randomFreeCell(taken grid.Set) (grid.Coord, bool) {
	for i := 0; i < 100; i++ {
		c := grid.Coord{X: g.rng.Intn(g.area.Width), Y: g.rng.Intn(g.area.Height)}
		if !taken.Has(c) {
			return c, true
		}
	}
	return grid.Coord{}, false
}

// walkerByID resolves a board entity id to its unit.
func (g *Game) walkerByID(id uuid.UUID) (tactics.Walker, bool) {
	u, ok := g.roster.ByID(id)
	if !ok {
		return nil, false
	}
	return u, true
}

// notifySettled is called from the walk-waiter goroutine when a move's
// animation completes. The notification rides the event queue so the
// transition back to idle happens on the loop goroutine.
func (g *Game) notifySettled(id uuid.UUID) {
	g.screen.PostWait(ui.NewEventMoveSettled(id))
}

// handleInput processes a single event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *ui.EventMoveSettled:
		g.ctrl.FinishMove(ev.UnitID)
	case *ui.EventRefresh:
		// Redraw happens at the top of the loop.
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.ctrl.Cancel()
	case tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// handleMouseEvent turns clicks into cell activations and motion into path
// preview updates.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	cell := grid.Coord{X: x, Y: y}
	buttons := ev.Buttons()
	pressed := buttons &^ g.lastButtons
	g.lastButtons = buttons

	switch {
	case pressed&tcell.Button1 != 0:
		if g.area.Contains(cell) {
			g.ctrl.Activate(ctx, cell)
		}
	case pressed&(tcell.Button2|tcell.Button3) != 0:
		g.ctrl.Cancel()
	default:
		g.preview.Hover(cell)
	}
}

// statusLine builds the hint text shown under the board.
func (g *Game) statusLine() string {
	switch g.ctrl.Phase() {
	case tactics.PhaseSelected:
		return "phase: selected | click a highlighted cell to move, Esc to cancel"
	case tactics.PhaseMoving:
		return "phase: moving | waiting for the unit to settle"
	default:
		return fmt.Sprintf("phase: idle | click a unit to select, q to quit (%d units)", g.roster.Len())
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
