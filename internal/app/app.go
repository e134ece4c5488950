//go:build ebiten

package app

import (
	"time"

	"swell/internal/render"
	"swell/internal/scene"
	"swell/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	sim     *scene.Scene
	painter *render.Painter
	view    *ebiten.Image
	frame   render.Frame
	tween   *render.Tween

	hud     *ui.HUD
	overlay *ui.Overlay
	sound   SplashPlayer

	scale    int
	hudWidth int
	dt       float64
	impact   float64
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(sim *scene.Scene, cfg *Config, sound SplashPlayer) *Game {
	if sound == nil {
		sound = silent{}
	}
	size := sim.Size()
	scale := max(cfg.Scale, 1)
	g := &Game{
		sim:      sim,
		painter:  render.NewPainter(size.W, size.H),
		view:     ebiten.NewImage(size.W, size.H),
		tween:    render.NewTween(cfg.TPS),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, scale),
		sound:    sound,
		scale:    scale,
		hudWidth: max(cfg.HUDWidth, 0),
		dt:       cfg.DT(),
		impact:   cfg.Impact,
		seed:     sim.Seed(),
	}
	g.tween.SetTarget(render.NewPalette(sim.CurrentProfileColors()))
	return g
}

// Reset reinitializes the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the scene by one tick.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.sim.CycleWeather()
	}

	viewW := g.sim.Size().W * g.scale
	onPanel := g.hud.Update(viewW)
	if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, _ := ebiten.CursorPosition()
		if mx >= 0 && mx < viewW {
			x := (float64(mx) + 0.5) / float64(g.scale)
			g.sim.Impact(x, g.impact)
			g.sound.PlaySplash(g.impact)
		}
	}
	g.overlay.Update()

	g.tween.SetTarget(render.NewPalette(g.sim.CurrentProfileColors()))
	g.tween.Update()

	if !g.paused || g.tickOnce {
		g.sim.AdvanceFrame(g.dt)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the water at logical resolution, scales it up and adds the
// overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Fill(render.Sky)
	render.Build(&g.frame, g.sim, g.tween.Palette())
	g.painter.Draw(g.view, &g.frame)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.view, op)

	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
