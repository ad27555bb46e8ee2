package pet

import "math"

// Display scale bounds
const (
	MinScale     = 0.5
	MaxScale     = 1.5
	ScaleStep    = 0.1
	DefaultScale = 1.0
)

// Prefs are the user's choices around the pet, saved apart from its stats.
type Prefs struct {
	Skin     string
	Scale    float64
	Visible  bool
	Language string
}

// DefaultPrefs returns the preferences of a first launch.
func DefaultPrefs(language string) Prefs {
	return Prefs{
		Skin:     DefaultSkin,
		Scale:    DefaultScale,
		Visible:  true,
		Language: language,
	}
}

// ClampScale keeps the scale in range and on the step grid.
func ClampScale(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultScale
	}
	v = math.Round(v/ScaleStep) * ScaleStep
	return math.Max(MinScale, math.Min(MaxScale, v))
}
