package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     int64  // RNG seed; 0 means use current time in platform layer
	Level    string // Level ID to start from; empty means the first level
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	GameOver  bool   // Whether the game has ended
	Won       bool   // Whether the game ended by clearing every level
	Paused    bool   // Whether the game is paused
	Level     string // Current level ID, empty for modes without levels
	MovesLeft int    // Remaining moves; -1 means unlimited
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// LevelCleared is set on the tick a level's target was reached.
	// The platform records progress when it sees it.
	LevelCleared string
	LevelScore   int // Score earned on the cleared level
}
