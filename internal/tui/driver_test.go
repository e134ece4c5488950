package tui

import (
	"testing"
	"time"

	"swell/internal/render"
	"swell/internal/scene"
	"swell/internal/weather"

	"github.com/gdamore/tcell/v2"
)

type countingPlayer struct {
	plays []float64
}

func (p *countingPlayer) PlaySplash(m float64) { p.plays = append(p.plays, m) }

func newTestDriver(t *testing.T) (*Driver, tcell.SimulationScreen, *countingPlayer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	player := &countingPlayer{}
	d := New(screen, scene.New(scene.DefaultConfig()), Config{TPS: 60}, player)
	return d, screen, player
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawUsesHalfBlocksAndStatusLine(t *testing.T) {
	d, screen, _ := newTestDriver(t)
	d.Draw()

	sky := toColor(render.Sky)
	r, _, style, _ := screen.GetContent(40, 0)
	fg, bg, _ := style.Decompose()
	if r != halfBlock || fg != sky || bg != sky {
		t.Fatalf("top cell = %q fg %v bg %v, want sky half block", r, fg, bg)
	}
	r, _, style, _ = screen.GetContent(40, 22)
	fg, _, _ = style.Decompose()
	if r != halfBlock || fg == sky {
		t.Fatalf("bottom cell should show water, got %q fg %v", r, fg)
	}
	r, _, _, _ = screen.GetContent(1, 24)
	if r != 'c' {
		t.Fatalf("status line should start with the weather name, got %q", r)
	}
}

func TestClickSplashesOncePerPress(t *testing.T) {
	d, _, player := newTestDriver(t)
	press := tcell.NewEventMouse(40, 10, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone)

	d.HandleEvent(press)
	d.HandleEvent(press)
	if got := d.sim.Splashes().Len(); got != 28 {
		t.Fatalf("held button should splash once, got %d particles", got)
	}
	d.HandleEvent(release)
	d.HandleEvent(press)
	if got := d.sim.Splashes().Len(); got != 56 {
		t.Fatalf("second press should splash again, got %d particles", got)
	}
	if v := d.sim.Field().Velocity()[40]; v != -2*scene.DefaultImpact {
		t.Fatalf("column 40 should map to sample 40, velocity %v", v)
	}
	if len(player.plays) != 2 || player.plays[0] != scene.DefaultImpact {
		t.Fatalf("unexpected sounds %v", player.plays)
	}
}

func TestClickOnStatusLineIgnored(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.HandleEvent(tcell.NewEventMouse(40, 24, tcell.Button1, tcell.ModNone))
	if d.sim.Splashes().Len() != 0 {
		t.Fatal("status line clicks should not splash")
	}
}

func TestWeatherControls(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button3, tcell.ModNone))
	if d.sim.Weather() != weather.Breezy {
		t.Fatalf("right click should cycle weather, got %v", d.sim.Weather())
	}
	d.HandleEvent(key('w'))
	if d.sim.Weather() != weather.Stormy {
		t.Fatalf("w should cycle weather, got %v", d.sim.Weather())
	}
	d.HandleEvent(key('r'))
	if d.sim.Weather() != weather.Calm {
		t.Fatalf("reset should restore the configured weather, got %v", d.sim.Weather())
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	d, _, _ := newTestDriver(t)
	t0 := time.Unix(100, 0)

	d.HandleEvent(key(' '))
	d.Tick(t0)
	if !d.Paused() || d.sim.Frames() != 0 {
		t.Fatalf("paused driver should not step, frames %d", d.sim.Frames())
	}
	d.HandleEvent(key('n'))
	d.Tick(t0.Add(20 * time.Millisecond))
	if d.sim.Frames() != 1 {
		t.Fatalf("n should step exactly once, frames %d", d.sim.Frames())
	}
	d.HandleEvent(key(' '))
	d.Tick(t0.Add(120 * time.Millisecond))
	if d.sim.Frames() != 7 {
		t.Fatalf("expected 6 catch-up ticks after resuming, frames %d", d.sim.Frames())
	}
	d.Tick(t0.Add(10 * time.Second))
	if d.sim.Frames() != 7+maxCatchUp {
		t.Fatalf("catch-up should be capped, frames %d", d.sim.Frames())
	}
}

func TestQuitKeys(t *testing.T) {
	d, _, _ := newTestDriver(t)
	if d.HandleEvent(key('x')) != true {
		t.Fatal("unbound keys should keep running")
	}
	if d.HandleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if d.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
