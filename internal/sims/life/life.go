// Package life implements Conway's Game of Life on a bounded board laid out
// over a pixel drawing surface.
package life

import (
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/geometry"
	"lifecanvas/internal/render"
)

// Game holds the board of one Life instance and drives its stepping.
type Game struct {
	cfg Config
	geo geometry.Geometry

	surface render.Surface
	sched   core.Scheduler
	task    core.Task

	cells *core.Grid
	rng   *core.RNG

	generation int
	stats      *core.Stats
	observers  []func(*Game)
}

// New returns a Game for a width x height surface with default settings.
func New(surface render.Surface, sched core.Scheduler, width, height float64) *Game {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(surface, sched, cfg)
}

// NewWithConfig returns a Game configured from cfg. A nil surface disables
// drawing; a nil scheduler is replaced by a private Schedule on the system
// clock.
func NewWithConfig(surface render.Surface, sched core.Scheduler, cfg Config) *Game {
	if sched == nil {
		sched = core.NewSchedule(nil)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultInterval
	}
	if cfg.Clusters < 0 {
		cfg.Clusters = 0
	}
	g := &Game{
		cfg:     cfg,
		geo:     geometry.New(cfg.Width, cfg.Height),
		surface: surface,
		sched:   sched,
		rng:     core.NewRNG(cfg.Seed),
		stats:   core.NewStats(time.Now()),
	}
	g.Reset()
	return g
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "life" }

// Size returns the board dimensions in cells.
func (g *Game) Size() core.Size { return core.Size{W: g.geo.Columns, H: g.geo.Rows} }

// Geometry returns the layout computed at construction.
func (g *Game) Geometry() geometry.Geometry { return g.geo }

// Width returns the surface width the board was laid out for.
func (g *Game) Width() float64 { return g.geo.Width }

// Height returns the surface height the board was laid out for.
func (g *Game) Height() float64 { return g.geo.Height }

// Rows returns the number of board rows.
func (g *Game) Rows() int { return g.geo.Rows }

// Columns returns the number of board columns.
func (g *Game) Columns() int { return g.geo.Columns }

// Cell returns the state at (row, col), or 0 outside the board.
func (g *Game) Cell(row, col int) uint8 { return g.cells.At(row, col) }

// Cells exposes the current board in row-major order. Callers must not
// modify it.
func (g *Game) Cells() []uint8 { return g.cells.Cells() }

// Snapshot returns a copy of the current board.
func (g *Game) Snapshot() *core.Grid { return g.cells.Clone() }

// Generation returns the number of steps since the last reset.
func (g *Game) Generation() int { return g.generation }

// Population returns the number of live cells.
func (g *Game) Population() int { return g.cells.Population() }

// Stats returns throughput and population statistics.
func (g *Game) Stats() core.Stats { return *g.stats }

// Config returns the active configuration.
func (g *Game) Config() Config { return g.cfg }

// OnDraw registers fn to be called after every redraw.
func (g *Game) OnDraw(fn func(*Game)) {
	if fn != nil {
		g.observers = append(g.observers, fn)
	}
}

// Reset sets every cell to dead.
func (g *Game) Reset() {
	g.cells = core.NewGrid(g.geo.Rows, g.geo.Columns)
	g.generation = 0
	g.stats.Restart(0, time.Now())
}

// Set turns the cell at (row, col) on.
func (g *Game) Set(row, col int) { g.SetCell(row, col, 1) }

// SetCell writes value at (row, col). Positions outside the board are
// ignored.
func (g *Game) SetCell(row, col int, value uint8) {
	g.cells.Set(row, col, value)
}

type position struct{ row, col int }

// neighborhood lists the eight positions around (row, col), including
// positions outside the board.
func neighborhood(row, col int) [8]position {
	return [8]position{
		{row - 1, col - 1},
		{row - 1, col},
		{row - 1, col + 1},
		{row, col - 1},
		{row, col + 1},
		{row + 1, col - 1},
		{row + 1, col},
		{row + 1, col + 1},
	}
}

// Neighbors returns the values of the neighbours of (row, col) that lie on
// the board. Cells past the border do not exist.
func (g *Game) Neighbors(row, col int) []uint8 {
	out := make([]uint8, 0, 8)
	for _, p := range neighborhood(row, col) {
		if g.cells.In(p.row, p.col) {
			out = append(out, g.cells.At(p.row, p.col))
		}
	}
	return out
}

func (g *Game) life(row, col int) int {
	sum := 0
	for _, p := range neighborhood(row, col) {
		sum += int(g.cells.At(p.row, p.col))
	}
	return sum
}

// Step advances the board by one generation and redraws it. Every cell is
// decided from the board as it was before the step.
func (g *Game) Step() error {
	next := g.cells.Clone()
	for row := 0; row < g.cells.Rows; row++ {
		for col := 0; col < g.cells.Cols; col++ {
			n := g.life(row, col)
			c := g.cells.At(row, col)
			switch {
			case n == 3 && c < 1:
				next.Set(row, col, 1)
			case n > 3 && c > 0:
				next.Set(row, col, 0)
			case n < 2 && c > 0:
				next.Set(row, col, 0)
			}
		}
	}
	g.cells = next
	g.generation++
	g.stats.Update(g.generation, g.cells.Population(), time.Now())
	return g.Draw()
}

// Tick is the scheduled form of Step. Draw failures are logged.
func (g *Game) Tick() {
	if err := g.Step(); err != nil {
		core.Logger().Warn("life: redraw failed", "generation", g.generation, "err", err)
	}
}

// Randomize clears the board and seeds nClusters clumps of random cells.
// Each clump writes a random state into the neighbours of (row+1, col) and
// of (row, col+1) around a uniformly chosen (row, col).
func (g *Game) Randomize(nClusters int) {
	g.Reset()
	if g.cells.Rows == 0 || g.cells.Cols == 0 {
		return
	}
	for i := 0; i < nClusters; i++ {
		row := g.rng.IntN(g.cells.Rows)
		col := g.rng.IntN(g.cells.Cols)
		first := neighborhood(row+1, col)
		second := neighborhood(row, col+1)
		for _, p := range append(first[:], second[:]...) {
			g.SetCell(p.row, p.col, g.rng.Bit())
		}
	}
	g.stats.Restart(g.cells.Population(), time.Now())
}

// Start optionally randomizes the board, draws it once and starts stepping.
func (g *Game) Start(randomize bool) error {
	if randomize {
		g.Randomize(g.cfg.Clusters)
	}
	err := g.Draw()
	g.Resume()
	return err
}

// Running reports whether periodic stepping is active.
func (g *Game) Running() bool { return g.task != nil }

// Pause stops periodic stepping. The board is kept.
func (g *Game) Pause() {
	if g.task == nil {
		return
	}
	g.task.Cancel()
	g.task = nil
	core.Logger().Debug("life: paused", "generation", g.generation)
}

// Resume steps once immediately and then once per interval. It does nothing
// when already running.
func (g *Game) Resume() {
	if g.task != nil {
		return
	}
	g.Tick()
	g.task = g.sched.Every(g.cfg.Interval, g.Tick)
	core.Logger().Debug("life: running", "generation", g.generation, "interval", g.cfg.Interval)
}

// SetInterval changes the stepping interval. A running game is rescheduled
// without an extra step.
func (g *Game) SetInterval(d time.Duration) {
	if d <= 0 {
		d = core.DefaultInterval
	}
	g.cfg.Interval = d
	if g.task != nil {
		g.task.Cancel()
		g.task = g.sched.Every(d, g.Tick)
	}
}
