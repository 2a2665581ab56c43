package core

// RuntimeConfig is handed to a game on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score     int
	HighScore int
	Dying     bool // death countdown is running
	Paused    bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState

	// RunEnded is set on the tick the protagonist dies.
	// RunScore carries the score the run ended with.
	RunEnded bool
	RunScore int
}
