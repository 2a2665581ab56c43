// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// Game is implemented by every game the platform can run.
// Games contain pure logic; the platform handles input mapping, timing
// and rendering.
type Game interface {
	// ID returns a unique identifier used by the CLI and the run log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. It is safe to call repeatedly.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst without mutating it.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Env carries the collaborators a game is built with.
// Zero fields are replaced by silent defaults in Normalize.
type Env struct {
	Cues   core.CuePlayer
	Logger *log.Logger
	Tuning *config.SkylandConfig
}

// Normalize fills unset fields: no sound, a discarding logger and the
// built-in tuning.
func (e Env) Normalize() Env {
	if e.Cues == nil {
		e.Cues = core.NopCues{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Tuning == nil {
		t := config.DefaultSkylandConfig()
		e.Tuning = &t
	}
	return e
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Env{}.Normalize()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a registered game with env.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(env.Normalize()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
