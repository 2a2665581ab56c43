package skyland

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/registry"
)

// scriptedRandom replays fixed draws. Exhausted scripts return 0 for Intn
// and 0.5 for Float64.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recordingDisplay keeps every text pushed to it.
type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) Replace(text string) {
	d.texts = append(d.texts, text)
}

func (d *recordingDisplay) last() string {
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}

// quietConfig disables every spawner so tests place entities by hand.
func quietConfig() config.SkylandConfig {
	cfg := config.DefaultSkylandConfig()
	cfg.Sky.Food.Odds = 0
	cfg.Sky.Enemy.Odds = 0
	cfg.Land.Food.Odds = 0
	cfg.Land.Enemy.Odds = 0
	return cfg
}

type fixture struct {
	game    *Game
	clock   *core.ManualClock
	cues    *core.CueRecorder
	display *recordingDisplay
}

func newFixture(t *testing.T, cfg config.SkylandConfig) *fixture {
	t.Helper()
	f := &fixture{
		clock:   &core.ManualClock{},
		cues:    &core.CueRecorder{},
		display: &recordingDisplay{},
	}
	f.game = New(registry.Env{Cues: f.cues},
		WithConfig(cfg),
		WithClock(f.clock),
		WithScoreDisplay(f.display),
	)
	return f
}

// tick advances the manual clock by one 60Hz frame and ticks the game.
func (f *fixture) tick() core.StepResult {
	f.clock.Add(time.Second / 60)
	return f.game.Tick()
}

// holdFlip keeps the active world from changing during a test.
func (f *fixture) holdFlip(land bool) {
	f.game.flip.island = land
	f.game.flip.due = time.Hour * 1000
}
