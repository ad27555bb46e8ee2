package behavior

import "time"

// State is everything a renderer needs to draw the pet. It is never
// persisted.
type State struct {
	X         float64 // Walk target; see DisplayX for the animated position
	Y         float64
	Direction int // 1 faces right, -1 faces left
	Walking   bool
	Dragging  bool
	EyeX      float64
	EyeY      float64
	Blink     bool
	HairSway  float64  // Degrees, negative sways left
	Reaction  Category // Active reaction, empty when none

	walkFrom  float64
	walkStart time.Time
	walkEnd   time.Time
}

// DisplayX returns where the pet appears at now, moving at constant speed
// from where the current walk started toward X.
func (s State) DisplayX(now time.Time) float64 {
	if !now.Before(s.walkEnd) || !s.walkEnd.After(s.walkStart) {
		return s.X
	}
	if now.Before(s.walkStart) {
		return s.walkFrom
	}
	f := float64(now.Sub(s.walkStart)) / float64(s.walkEnd.Sub(s.walkStart))
	return s.walkFrom + (s.X-s.walkFrom)*f
}

// Bubble is the speech bubble above the pet.
type Bubble struct {
	Message string
	Visible bool
}
