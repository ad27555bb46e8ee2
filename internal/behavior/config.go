package behavior

import "time"

// Config holds the controller's timing and movement constants. Distances
// are in world units: pixels for a browser-sized world, columns for a
// terminal.
type Config struct {
	FirstPlan  time.Duration // Delay before the first planner run after mount
	PlanBase   time.Duration
	PlanJitter time.Duration // Random extra delay added to PlanBase

	MoveChance       float64 // Chance a planner run walks
	LowMoveChance    float64 // Same, while hungry or sick
	IdleSpeechChance float64 // Chance a planner run that doesn't walk says something

	MinStep         float64
	MaxStep         float64
	MinDistance     float64 // Shorter walks are skipped
	WalkTimePerUnit time.Duration
	MinX            float64
	MaxX            float64
	StartX          float64
	RestY           float64

	SwayFactor   float64 // Degrees of hair sway per unit of horizontal drag
	MaxSway      float64
	SwayDecay    time.Duration // Sway returns to rest after this long without motion
	ReleaseDelay time.Duration // Mood returns to baseline this long after a drop

	BlinkBase     time.Duration
	BlinkJitter   time.Duration
	BlinkDuration time.Duration
	EyeFalloff    float64 // Cursor distance per unit of eye offset
}

// DefaultConfig returns constants tuned for a pixel world about a
// browser window wide.
func DefaultConfig() Config {
	return Config{
		FirstPlan:  1500 * time.Millisecond,
		PlanBase:   3 * time.Second,
		PlanJitter: 3 * time.Second,

		MoveChance:       0.5,
		LowMoveChance:    0.2,
		IdleSpeechChance: 0.3,

		MinStep:         50,
		MaxStep:         300,
		MinDistance:     10,
		WalkTimePerUnit: 5 * time.Millisecond,
		MinX:            -100,
		MaxX:            1000,
		StartX:          100,
		RestY:           0,

		SwayFactor:   2.5,
		MaxSway:      60,
		SwayDecay:    100 * time.Millisecond,
		ReleaseDelay: 500 * time.Millisecond,

		BlinkBase:     4 * time.Second,
		BlinkJitter:   2 * time.Second,
		BlinkDuration: 150 * time.Millisecond,
		EyeFalloff:    30,
	}
}

// TerminalConfig returns DefaultConfig rescaled to a world measured in
// terminal columns and rows.
func TerminalConfig() Config {
	cfg := DefaultConfig()
	cfg.MinStep = 3
	cfg.MaxStep = 18
	cfg.MinDistance = 1
	cfg.WalkTimePerUnit = 120 * time.Millisecond
	cfg.MinX = 0
	cfg.MaxX = 60
	cfg.StartX = 4
	cfg.SwayFactor = 15
	cfg.EyeFalloff = 4
	return cfg
}
