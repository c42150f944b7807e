package app

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/sims/life"
)

// Session wires a Life board to a pixel canvas and a polled schedule. Hosts
// translate their input into Session calls and poll Schedule from their own
// loop.
type Session struct {
	cfg      *Config
	canvas   *render.Canvas
	schedule *core.Schedule
	game     *life.Game
}

// NewSession allocates the canvas and board described by cfg. A nil clock
// uses the system clock.
func NewSession(cfg *Config, clock core.Clock) *Session {
	canvas := render.NewImageCanvas(max(cfg.Width, 1), max(cfg.Height, 1))
	schedule := core.NewSchedule(clock)
	return &Session{
		cfg:      cfg,
		canvas:   canvas,
		schedule: schedule,
		game:     life.NewWithConfig(canvas, schedule, cfg.LifeConfig()),
	}
}

// Game returns the board.
func (s *Session) Game() *life.Game { return s.game }

// Canvas returns the surface the board draws on.
func (s *Session) Canvas() *render.Canvas { return s.canvas }

// Schedule returns the scheduler driving the board.
func (s *Session) Schedule() *core.Schedule { return s.schedule }

// Start draws the board and begins stepping, randomizing first when the
// config asks for it.
func (s *Session) Start() error {
	core.Logger().Info("life: starting",
		"width", s.cfg.Width, "height", s.cfg.Height,
		"rows", s.game.Rows(), "columns", s.game.Columns(),
		"interval", s.game.Config().Interval)
	return s.game.Start(s.cfg.Random)
}

// Toggle pauses a running board or resumes a paused one.
func (s *Session) Toggle() {
	if s.game.Running() {
		s.game.Pause()
		return
	}
	s.game.Resume()
}

// StepOnce advances a paused board by one generation.
func (s *Session) StepOnce() {
	if s.game.Running() {
		return
	}
	s.game.Tick()
}

// Clear empties the board and redraws it.
func (s *Session) Clear() error {
	s.game.Reset()
	return s.game.Draw()
}

// Shuffle reseeds the board with the configured cluster count and redraws.
func (s *Session) Shuffle() error {
	s.game.Randomize(s.game.Config().Clusters)
	return s.game.Draw()
}

// ToggleAt flips the cell under pixel (x, y). Points outside the board are
// ignored.
func (s *Session) ToggleAt(x, y float64) error {
	row, col, ok := s.game.Geometry().CellAt(x, y)
	if !ok {
		return nil
	}
	s.game.SetCell(row, col, 1-s.game.Cell(row, col))
	return s.game.Draw()
}

// Poll runs due scheduled work.
func (s *Session) Poll() int { return s.schedule.Poll() }

// Close releases the canvas.
func (s *Session) Close() error { return s.canvas.Close() }
