package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/storage"
)

// stubGame records what the model feeds it. It follows the game
// contract for the button: pause toggles first, input is dropped while
// paused or dying, and a respawn disarms. It ends a run after dieAt steps
// when dieAt > 0 and then stays dying for deathTicks steps.
type stubGame struct {
	resets     int
	steps      int
	frames     []core.InputFrame
	dieAt      int
	deathTicks int
	dying      int
	paused     bool
	armed      bool
	score      int
	tuning     *config.SkylandConfig
}

func (g *stubGame) ID() string                       { return "stub" }
func (g *stubGame) Title() string                    { return "Stub" }
func (g *stubGame) SetTuning(c config.SkylandConfig) { g.tuning = &c }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.dying = 0
	g.paused = false
	g.armed = false
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, Dying: g.dying > 0, Paused: g.paused}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.frames = append(g.frames, frame)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.dying > 0 {
		g.dying--
		if g.dying == 0 {
			g.armed = false
		}
		return core.StepResult{State: g.State()}
	}
	if pressed, ok := in.Engaged(); ok {
		g.armed = pressed
	}

	res := core.StepResult{}
	if g.dieAt > 0 && g.steps == g.dieAt {
		g.dying = g.deathTicks
		res.RunEnded = true
		res.RunScore = g.score
	}
	res.State = g.State()
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, "stub", core.ColorGreen)
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, store, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelResetsGameOnCreate(t *testing.T) {
	g := &stubGame{}
	newTestModel(t, g, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelEngageReachesNextTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	if pressed, ok := g.frames[0].Engaged(); !ok || !pressed {
		t.Errorf("first frame Engaged() = %v, %v; want true, true", pressed, ok)
	}
	if _, ok := g.frames[1].Engaged(); ok {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestModelMouseReleaseMapsToRelease(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	update(t, m, TickMsg(time.Now()))

	if pressed, ok := g.frames[0].Engaged(); !ok || pressed {
		t.Errorf("Engaged() = %v, %v; want false, true", pressed, ok)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command does not quit")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, want 40x10", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRestartKey(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, keyMsg(" "))
	m = update(t, m, keyMsg("r"))

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.input.Engaged() {
		t.Error("button still engaged after restart")
	}
}

func TestModelRecordsEndedRun(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{dieAt: 30, score: 4}
	m := newTestModel(t, g, store)
	for range 31 {
		m = update(t, m, TickMsg(time.Now()))
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Score != 4 {
		t.Errorf("Score = %d, want 4", runs[0].Score)
	}
	if runs[0].Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", runs[0].Duration)
	}
	if m.runTicks != 1 {
		t.Errorf("runTicks = %d, want 1 after the run ended", m.runTicks)
	}
}

func TestModelScoreboardPausesSimulation(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, TickMsg(time.Now()))
	if g.steps != 0 {
		t.Errorf("steps = %d while the scoreboard is open", g.steps)
	}
	if !strings.Contains(m.View(), "RUNS THIS SESSION") {
		t.Error("scoreboard not shown")
	}

	m = update(t, m, keyMsg("tab"))
	update(t, m, TickMsg(time.Now()))
	if g.steps != 1 {
		t.Errorf("steps = %d after closing the scoreboard, want 1", g.steps)
	}
}

func TestModelConfigReload(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	cfg := config.DefaultSkylandConfig()
	cfg.Death.Countdown = 5
	m = update(t, m, ConfigReloadedMsg{Config: cfg})
	if g.tuning == nil || g.tuning.Death.Countdown != 5 {
		t.Fatalf("tuning = %+v, want countdown 5", g.tuning)
	}

	update(t, m, ConfigErrorMsg{Err: errors.New("bad yaml")})
}

func TestModelViewRendersGame(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	if !strings.Contains(m.View(), "stub") {
		t.Error("game output missing from view")
	}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelButtonStaysInStepWithGame(t *testing.T) {
	tests := []struct {
		name string
		keys []string // "." is a tick
		want bool
	}{
		{"press", []string{" ", "."}, true},
		{"press twice", []string{" ", ".", " ", "."}, false},
		{"press while paused is dropped", []string{"p", ".", " ", ".", "p", ".", " ", "."}, true},
		{"press with unpause in one tick", []string{"p", ".", " ", "p", " ", "."}, true},
		{"press then pause in one tick", []string{" ", "p", ".", "p", ".", " ", "."}, true},
		{"pause then press in one tick", []string{"p", " ", ".", "p", ".", " ", "."}, true},
		{"release while paused is dropped", []string{" ", ".", "p", ".", " ", ".", "p", ".", "."}, true},
		{"scoreboard keeps queued press", []string{" ", "tab", ".", " ", "tab", "."}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{}
			m := newTestModel(t, g, nil)
			for _, k := range tt.keys {
				if k == "." {
					m = tick(t, m)
					continue
				}
				m = update(t, m, keyMsg(k))
			}
			if g.armed != tt.want {
				t.Errorf("game armed = %v, want %v", g.armed, tt.want)
			}
			if m.input.Engaged() != g.armed {
				t.Errorf("mapper engaged = %v, game armed = %v", m.input.Engaged(), g.armed)
			}
		})
	}
}

func TestModelButtonAfterRespawn(t *testing.T) {
	g := &stubGame{dieAt: 2, deathTicks: 3}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg(" "))
	m = tick(t, m)
	m = tick(t, m) // run ends
	if !m.State().Dying {
		t.Fatal("stub game did not enter the death sequence")
	}

	m = update(t, m, keyMsg(" ")) // ignored while dying
	for range 3 {
		m = tick(t, m)
	}
	if m.State().Dying || g.armed || m.input.Engaged() {
		t.Fatalf("after respawn: dying %v, armed %v, engaged %v", m.State().Dying, g.armed, m.input.Engaged())
	}

	m = update(t, m, keyMsg(" "))
	tick(t, m)
	if !g.armed {
		t.Error("first press after respawn did not engage")
	}
}
