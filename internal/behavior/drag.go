package behavior

// PointerDown starts dragging the pet from (x, y).
func (c *Controller) PointerDown(x, y float64) {
	if !c.mounted || c.state.Dragging {
		return
	}
	now := c.now()
	c.stopWalk(now)
	c.state.Dragging = true
	c.pointerX, c.pointerY = x, y
	c.react(now, CategorySurprised)
}

// PointerMove carries the pet along with the pointer. Hair sways against
// the motion and settles shortly after the pointer stops.
func (c *Controller) PointerMove(x, y float64) {
	if !c.mounted || !c.state.Dragging {
		return
	}
	dx := x - c.pointerX
	dy := y - c.pointerY
	c.state.X += dx
	c.state.Y += dy
	c.state.HairSway = clampRange(-c.cfg.SwayFactor*dx, -c.cfg.MaxSway, c.cfg.MaxSway)
	c.sched.schedule(slotSway, c.now().Add(c.cfg.SwayDecay))
	c.pointerX, c.pointerY = x, y
}

// PointerUp drops the pet back on the ground. The mood settles back to
// baseline shortly after, while the bubble stays up until the reaction
// expires.
func (c *Controller) PointerUp() {
	if !c.mounted || !c.state.Dragging {
		return
	}
	c.state.Dragging = false
	c.state.HairSway = 0
	c.sched.cancel(slotSway)
	c.state.Y = c.cfg.RestY
	if c.sched.pending(slotReaction) {
		c.sched.schedule(slotRelease, c.now().Add(c.cfg.ReleaseDelay))
	}
}
