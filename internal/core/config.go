package core

// RuntimeConfig contains process-level settings passed to a frontend.
// The playfield itself is sized in logical pixels by the game config; these
// values describe the terminal it is scaled onto.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  35,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}
