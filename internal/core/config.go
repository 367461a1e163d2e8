package core

// RuntimeConfig contains host parameters passed to the scene at start.
// Hosts use this to size the viewport and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Host width in cells (terminal) or pixels (window)
	ScreenH  int   // Host height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means seed from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	DT       float64 // Elapsed seconds used for this tick
	Recycled int     // Stars replaced this tick
	Lines    int     // Connective lines drawn this tick
}
