package behavior

import (
	"math"
	"time"
)

func (c *Controller) scheduleBlink(now time.Time) {
	jitter := time.Duration(c.rand.Float64() * float64(c.cfg.BlinkJitter))
	c.sched.schedule(slotBlink, now.Add(c.cfg.BlinkBase+jitter))
}

// Look turns the eyes toward the cursor. The offset grows with distance
// up to the skin's eye range and is mirrored when the pet faces left.
func (c *Controller) Look(cursorX, cursorY, centerX, centerY float64) {
	if !c.mounted {
		return
	}
	dx := (cursorX - centerX) * float64(c.state.Direction)
	dy := cursorY - centerY
	angle := math.Atan2(dy, dx)
	distance := math.Min(c.eyeRange, math.Hypot(dx, dy)/c.cfg.EyeFalloff)
	c.state.EyeX = math.Cos(angle) * distance
	c.state.EyeY = math.Sin(angle) * distance
}
