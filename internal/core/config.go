package core

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation works in fixed world units; ScreenW/ScreenH only size the
// terminal projection.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render/tick messages per second (default 60)
	Seed     int64 // RNG seed for reproducible level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current run score
	Best     int     // Best score seen by this game instance
	Height   float64 // Camera scroll height in world units
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Simulated is false when the tick was swallowed (paused or game over).
	Simulated bool
}
