//go:build ebiten

package app

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.SurfacePainter
	hud     *ui.HUD

	width  int
	height int
}

// New constructs a Game for the provided session.
func New(session *Session, hudWidth int) *Game {
	w, h := session.Canvas().Size()
	return &Game{
		session: session,
		painter: render.NewSurfacePainter(w, h),
		hud:     ui.NewHUD(session.Game(), hudWidth),
		width:   w,
		height:  h,
	}
}

// Update handles input and runs due generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.session.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.report(g.session.Shuffle())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.width {
			g.report(g.session.ToggleAt(float64(x), float64(y)))
		}
	}

	g.hud.Update(g.width)
	g.session.Poll()
	return nil
}

func (g *Game) report(err error) {
	if err != nil {
		core.Logger().Warn("life: redraw failed", "err", err)
	}
}

// Draw renders the board canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Canvas())
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
