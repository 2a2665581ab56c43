// Package skyland implements a two-world arcade game. A creature drifts
// between Sky and Land, opening its mouth or jumping to eat food while
// avoiding enemies; the active world flips faster as the score grows.
package skyland

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
	"github.com/vovakirdan/skyland/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "skyland"

func init() {
	registry.Register(ID, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// ScoreDisplay receives the score text whenever score or highscore changes.
type ScoreDisplay interface {
	Replace(text string)
}

// Game is the orchestrator: it owns both worlds, the protagonist, the
// flip scheduler and the score, and advances them in a fixed order.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SkylandConfig
	pending *config.SkylandConfig // applied at the next session reset

	rng       Random
	fixedRng  bool // injected, never reseeded
	clock     core.Clock
	tickClock *core.TickClock // non-nil when the game drives its own time
	cues      core.CuePlayer
	logger    *log.Logger
	display   ScoreDisplay
	scoreBox  *core.TextBox

	sky  *World
	land *World
	hero *Protagonist
	flip *FlipScheduler

	score    Score
	eaten    int // food eaten during the current tick
	paused   bool
	runEnded bool
	runScore int
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the internal tick clock. The caller advances it.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
		g.tickClock = nil
	}
}

// WithRandom replaces the seeded random source.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRng = true
	}
}

// WithScoreDisplay adds an external score display.
func WithScoreDisplay(d ScoreDisplay) Option {
	return func(g *Game) {
		g.display = d
	}
}

// WithConfig overrides the tuning from the environment.
func WithConfig(cfg config.SkylandConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// New creates a game and starts a session with the default runtime config.
func New(env registry.Env, opts ...Option) *Game {
	env = env.Normalize()
	tc := core.NewTickClock(core.DefaultConfig().TickRate)
	g := &Game{
		cfg:       *env.Tuning,
		cues:      env.Cues,
		logger:    env.Logger,
		clock:     tc,
		tickClock: tc,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyland"
}

// SetTuning schedules new tuning. It takes effect at the next session
// reset, never in the middle of a run.
func (g *Game) SetTuning(cfg config.SkylandConfig) {
	g.pending = &cfg
}

// Reset starts a fresh session: the random source is reseeded from
// cfg.Seed and the highscore is cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.tickClock != nil && cfg.TickRate > 0 {
		g.tickClock.Rate = cfg.TickRate
	}
	if !g.fixedRng || g.rng == nil {
		g.rng = newRandom(cfg.Seed)
	}
	g.score = Score{}
	g.paused = false
	g.restart()
	g.logger.Info("session started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)
}

// restart rebuilds the run state. Score returns to zero; the highscore
// survives.
func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.sky = nil
	}
	if g.sky == nil {
		area := core.NewRect(0, 0, g.cfg.Area.Width, g.cfg.Area.Height)
		g.sky = NewWorld("sky", area, g.cfg.Sky, g.rng)
		g.land = NewWorld("land", area, g.cfg.Land, g.rng)
		g.hero = NewProtagonist(g.cfg.Protagonist, g.cfg.Jump)
		g.flip = NewFlipScheduler(config.NewCadence(g.cfg.Flip))
		g.scoreBox = core.NewTextBox(core.NewRect(4, 4, g.cfg.Area.Width-8, 1))
	}
	g.sky.rng = g.rng
	g.land.rng = g.rng
	g.sky.Reset()
	g.land.Reset()
	g.hero.Reset()
	g.flip.Reset(g.clock.Now())
	g.score.Current = 0
	g.runEnded = false
	g.updateDisplay()
}

// Step advances the game by one tick, applying the frame's input first.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if pressed, ok := in.Engaged(); ok {
		g.SetAction(pressed)
	}
	return g.Tick()
}

// SetAction forwards the button state: a press arms both worlds and
// starts a jump charge when grounded, a release disarms and ends the
// charge. Ignored while dying.
func (g *Game) SetAction(pressed bool) {
	if g.hero.Dying() > 0 {
		return
	}
	g.sky.SetAction(pressed)
	g.land.SetAction(pressed)
	if g.hero.Engage(pressed) {
		g.cues.Play(core.CueJump)
	}
}

// Tick advances the simulation by one frame: protagonist and flip
// scheduler, then both worlds, then consumption.
func (g *Game) Tick() core.StepResult {
	if g.tickClock != nil {
		g.tickClock.Advance()
	}
	now := g.clock.Now()

	if g.hero.Dying() > 0 {
		if g.hero.StepDead() {
			g.logger.Debug("respawn", "highscore", g.score.High)
			g.restart()
			return core.StepResult{State: g.State()}
		}
	} else {
		g.hero.MoveX(g.rng)
		if g.hero.StepJump() && g.flip.OnLand() {
			g.landing()
		}
		if g.hero.Dying() == 0 && g.flip.Update(now, g.score.Current, g.rng) {
			g.logger.Debug("world flip",
				"land", g.flip.OnLand(),
				"delay", g.flip.Delay(),
				"mean", g.flip.MeanDelay(g.score.Current))
		}
	}

	g.sky.Tick(false)
	g.land.Tick(g.hero.Dying() > 0)

	if g.hero.Dying() == 0 && !g.flip.OnLand() && g.sky.Armed() {
		g.consume(g.sky.Matches(g.sky.CaptureRect(g.hero.X(), g.hero.JumpOffset())))
	}
	if g.eaten > 0 {
		g.cues.Play(core.CueEat)
		g.updateDisplay()
		g.eaten = 0
	}

	res := core.StepResult{State: g.State()}
	if g.runEnded {
		res.RunEnded = true
		res.RunScore = g.runScore
		g.runEnded = false
	}
	return res
}

// landing runs the one-shot Land capture as the jump touches down.
func (g *Game) landing() {
	g.cues.Play(core.CueFootstep)
	g.consume(g.land.Matches(g.land.CaptureRect(g.hero.X(), g.hero.JumpOffset())))
}

// consume resolves a match set. Food is tallied for the end of the tick,
// where the eat cue and display update happen once; death is entered at
// once and at most once.
func (g *Game) consume(matches []*Entity) {
	if len(matches) == 0 {
		return
	}
	out := Resolve(matches, &g.score)
	g.eaten += out.Eaten
	if out.Fatal() {
		g.die()
	}
}

func (g *Game) die() {
	if !g.hero.Kill(g.cfg.Death.Countdown) {
		return
	}
	g.cues.Play(core.CueExplosion)
	g.runEnded = true
	g.runScore = g.score.Current
	g.logger.Debug("death", "score", g.score.Current, "countdown", g.cfg.Death.Countdown)
}

func (g *Game) updateDisplay() {
	text := g.score.Text()
	g.scoreBox.Replace(text)
	if g.display != nil {
		g.display.Replace(text)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score.Current,
		HighScore: g.score.High,
		Dying:     g.hero.Dying() > 0,
		Paused:    g.paused,
	}
}

// Now returns the current simulation time.
func (g *Game) Now() time.Duration {
	return g.clock.Now()
}
