package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/batpong/internal/audio"
	"github.com/diegok/batpong/internal/config"
	"github.com/diegok/batpong/internal/game"
	"github.com/diegok/batpong/internal/ui"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()

	cfg, err := config.ParseArgs([]string{"--mute", "--seed", "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	a := NewApp(cfg)
	a.log = log.New(&buf, "", 0)
	a.initAudio()

	if err := a.newMatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 25)
	a.attach(ui.NewScreen(sim))

	return a, sim, &buf
}

func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(c)
	}
	return sb.String()
}

func TestApp_QuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t)

	if !a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' should quit")
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Error("'w' should not quit")
	}
}

func TestApp_StartsOnSpace(t *testing.T) {
	a, _, buf := newTestApp(t)

	a.tick()
	if a.match.Phase() != game.PhaseMenu {
		t.Fatalf("expected menu before any key, got %v", a.match.Phase())
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	a.tick()

	if a.match.Phase() != game.PhaseRunning {
		t.Fatalf("expected running after space, got %v", a.match.Phase())
	}
	if !strings.Contains(buf.String(), "[app] random seed 7") {
		t.Errorf("expected seed to be logged, got %q", buf.String())
	}
}

func TestApp_DrawsMenu(t *testing.T) {
	a, sim, _ := newTestApp(t)

	a.tick()

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(sim, y), "BATPONG") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected the title on the menu screen")
	}
	if status := rowText(sim, 24); !strings.Contains(status, "space  start") {
		t.Errorf("expected menu help in the status bar, got %q", status)
	}
}

func TestApp_ResizeRedraws(t *testing.T) {
	a, sim, _ := newTestApp(t)

	sim.SetSize(100, 30)
	if a.handleEvent(tcell.NewEventResize(100, 30)) {
		t.Fatal("resize should not quit")
	}

	if status := rowText(sim, 29); !strings.Contains(status, "q  quit") {
		t.Errorf("expected status bar on the new last row, got %q", status)
	}
}

func TestApp_Status(t *testing.T) {
	a, _, _ := newTestApp(t)

	if s := a.status(); !strings.Contains(s, "start") {
		t.Errorf("menu status: got %q", s)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	a.tick()
	if s := a.status(); !strings.Contains(s, "x1.0") {
		t.Errorf("running status should show the speed, got %q", s)
	}
}

func TestApp_MutedAudioPlays(t *testing.T) {
	newTestApp(t)

	if err := audio.Hit().Play(); err != nil {
		t.Errorf("muted cues should play without output, got %v", err)
	}
}
