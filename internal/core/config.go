package core

// RuntimeConfig describes the terminal the platform layer draws into.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Spawn/collision ticks per second (default 60)
}
