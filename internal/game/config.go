package game

// Board dimensions (in tiles).
const (
	GridWidth  = 10
	GridHeight = 10
)

// Window defaults. Square canvas so tiles stay square.
const (
	WindowWidth  = 500
	WindowHeight = 500
)

// Simulation timing. The snake advances once per AdvanceInterval,
// independent of the vsynced render rate.
const AdvanceInterval = 0.25 // seconds
