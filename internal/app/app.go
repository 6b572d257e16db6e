//go:build ebiten

package app

import (
	"image"
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep
	view    render.Viewport
	rng     *pcore.RNG

	onColor  color.Color
	offColor color.Color

	window  int
	running bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) (*Game, error) {
	on, err := ParseHexColor(cfg.FG)
	if err != nil {
		return nil, err
	}
	off, err := ParseHexColor(cfg.BG)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(sim),
		hud:      ui.NewHUD(sim, hudWidth),
		pacer:    core.NewFixedStep(cfg.Speed),
		view:     render.Viewport{W: cfg.Zoom, H: cfg.Zoom},
		rng:      pcore.NewRNG(cfg.Seed),
		onColor:  on,
		offColor: off,
		window:   cfg.Window,
	}, nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.view.Pan(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.view.Pan(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.view.Pan(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.view.Pan(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.view.Zoom(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.view.Zoom(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetTPS(g.pacer.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.pacer.TPS() > 1 {
		g.pacer.SetTPS(g.pacer.TPS() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomizeView()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && mx < g.window && my >= 0 && my < g.window {
			x, y := g.view.CellAt(mx, my, g.window, g.window)
			g.sim.Toggle(x, y)
		}
	}

	g.overlay.Update()

	if g.running && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	g.hud.Update(ui.Status{
		CornerX: g.view.X,
		CornerY: g.view.Y,
		Speed:   g.pacer.TPS(),
		Running: g.running,
	})
	return nil
}

// randomizeView seeds the visible cells at 30% density.
func (g *Game) randomizeView() {
	w, ok := g.sim.(*life.World)
	if !ok {
		return
	}
	r := life.Rect{X1: g.view.X, Y1: g.view.Y, X2: g.view.X + g.view.W - 1, Y2: g.view.Y + g.view.H - 1}
	_ = life.Randomize(w, r, 0.3, g.rng)
}

// Draw renders the visible cells, overlay and stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := screen.SubImage(image.Rect(0, 0, g.window, g.window)).(*ebiten.Image)
	g.painter.Blit(grid, g.view, g.sim, g.onColor, g.offColor)
	g.overlay.Draw(grid, g.view)
	g.hud.Draw(screen, g.window, g.window)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window + hudWidth, g.window
}
