//go:build ebiten

package app

import (
	"time"

	"langton/internal/core"
	"langton/internal/render"
	"langton/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Update
// advances exactly one frame, so the display refresh is the frame driver.
type Game struct {
	sim     core.Sim
	painter *render.SurfacePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	opts     Options
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewSurfacePainter(opts.SurfaceW, opts.SurfaceH, opts.CellSize, opts.CellBorder),
		overlay: ui.NewOverlay(sim, opts.CellSize, opts.Debug),
		opts:    opts,
		seed:    opts.Seed,
	}
	if opts.HUDWidth > 0 {
		g.hud = ui.NewHUD(sim, opts.HUDWidth, opts.SurfaceH)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.opts.SurfaceW)
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, g.sim.Colors(), size.W, size.H, g.opts.Background)
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.opts.SurfaceW)
	}
}

// Layout returns the logical screen size: the surface plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.SurfaceW + g.opts.HUDWidth, g.opts.SurfaceH
}
