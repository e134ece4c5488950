// Package tui runs the water scene in a terminal. Each character cell shows
// two vertically stacked pixels of the software-rendered frame using the
// upper half block glyph.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"swell/internal/core"
	"swell/internal/render"
	"swell/internal/scene"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock = '▀'
	// maxCatchUp bounds how many ticks one wake-up may run after a stall.
	maxCatchUp = 8
	frameDelay = 16 * time.Millisecond
)

// Player plays the sound of an impact.
type Player interface {
	PlaySplash(magnitude float64)
}

// Config holds the driver settings.
type Config struct {
	TPS    int
	Impact float64
}

// Driver owns the terminal loop: it decodes tcell events, steps the scene at
// a fixed rate and paints the frame.
type Driver struct {
	screen tcell.Screen
	sim    *scene.Scene
	sound  Player

	canvas *render.Canvas
	frame  render.Frame
	tween  *render.Tween
	clock  *core.FixedStep

	impact   float64
	paused   bool
	tickOnce bool
	seed     int64
	buttons  tcell.ButtonMask
}

// New creates a driver drawing sim onto an initialised screen. A nil sound
// plays nothing.
func New(screen tcell.Screen, sim *scene.Scene, cfg Config, sound Player) *Driver {
	size := sim.Size()
	if cfg.Impact == 0 {
		cfg.Impact = scene.DefaultImpact
	}
	d := &Driver{
		screen: screen,
		sim:    sim,
		sound:  sound,
		canvas: render.NewCanvas(size.W, size.H),
		tween:  render.NewTween(cfg.TPS),
		clock:  core.NewFixedStep(cfg.TPS),
		impact: cfg.Impact,
		seed:   sim.Seed(),
	}
	d.tween.SetTarget(render.NewPalette(sim.CurrentProfileColors()))
	screen.EnableMouse()
	screen.HideCursor()
	return d
}

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Run loops until the user quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			d.Tick(now)
			d.Draw()
			d.screen.Show()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		d.paused = false
		return true
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		d.paused = !d.paused
	case 'n', 'N':
		d.tickOnce = true
	case 'w', 'W':
		d.sim.CycleWeather()
	case 'r', 'R':
		d.sim.Reset(d.seed)
	case 's', 'S':
		d.seed = time.Now().UnixNano()
		d.sim.Reset(d.seed)
	}
	return true
}

// handleMouse reacts to button presses only; tcell repeats the mask while a
// button is held and on motion.
func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ d.buttons
	d.buttons = buttons

	mx, my := ev.Position()
	cols, rows := d.screen.Size()
	if cols <= 0 || my >= viewRows(rows) {
		return
	}
	if pressed&tcell.Button1 != 0 {
		w := float64(d.sim.Size().W)
		x := (float64(mx) + 0.5) * w / float64(cols)
		d.sim.Impact(x, d.impact)
		if d.sound != nil {
			d.sound.PlaySplash(d.impact)
		}
	}
	if pressed&(tcell.Button2|tcell.Button3) != 0 {
		d.sim.CycleWeather()
	}
}

// Tick runs every simulation step due at now.
func (d *Driver) Tick(now time.Time) {
	d.tween.SetTarget(render.NewPalette(d.sim.CurrentProfileColors()))
	steps := d.clock.Pending(now, maxCatchUp)
	for i := 0; i < steps; i++ {
		d.tween.Update()
		if d.paused && !d.tickOnce {
			continue
		}
		d.sim.AdvanceFrame(d.clock.DT())
		d.tickOnce = false
	}
}

// Draw renders the scene into the screen's back buffer. The caller shows it.
func (d *Driver) Draw() {
	render.Build(&d.frame, d.sim, d.tween.Palette())
	d.canvas.Render(&d.frame, render.Sky)

	cols, rows := d.screen.Size()
	vrows := viewRows(rows)
	if cols <= 0 || vrows <= 0 {
		return
	}
	img := d.canvas.Image()
	w, h := d.canvas.Size()
	for cy := 0; cy < vrows; cy++ {
		top := (4*cy + 1) * h / (4 * vrows)
		bottom := (4*cy + 3) * h / (4 * vrows)
		for cx := 0; cx < cols; cx++ {
			px := (2*cx + 1) * w / (2 * cols)
			style := tcell.StyleDefault.
				Foreground(toColor(img.RGBAAt(px, top))).
				Background(toColor(img.RGBAAt(px, bottom)))
			d.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	if rows > vrows {
		d.drawStatus(cols, rows-1)
	}
}

func (d *Driver) drawStatus(cols, y int) {
	state := ""
	if d.paused {
		state = " [paused]"
	}
	line := fmt.Sprintf(" %s | spray %d | t=%.1fs%s | click splash  w weather  space pause  n step  r reset  s reseed  q quit",
		d.sim.Weather(), d.sim.Splashes().Len(), d.sim.Elapsed(), state)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		d.screen.SetContent(x, y, ' ', nil, style)
	}
}

// viewRows is the number of rows used for the water, leaving one for the
// status line when there is room.
func viewRows(rows int) int {
	if rows > 1 {
		return rows - 1
	}
	return rows
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
