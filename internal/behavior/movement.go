package behavior

import (
	"math"
	"time"

	"doodlepet/internal/pet"
)

// plan is one run of the movement planner: walk somewhere, or stand and
// maybe say something. A pet being dragged is left alone.
func (c *Controller) plan(now time.Time) {
	if c.state.Dragging {
		return
	}

	s := c.pet.Stats()
	chance := c.cfg.MoveChance
	if s.Health < pet.LowStatThreshold || s.Hunger < pet.LowStatThreshold {
		chance = c.cfg.LowMoveChance
	}

	if c.rand.Float64() < chance {
		c.walk(now)
		return
	}

	c.state.Walking = false
	if c.rand.Float64() < c.cfg.IdleSpeechChance {
		c.react(now, speechFor(pet.NeedOf(s)))
	}
}

func (c *Controller) walk(now time.Time) {
	step := c.cfg.MinStep + c.rand.Float64()*(c.cfg.MaxStep-c.cfg.MinStep)
	if c.rand.Float64() > 0.5 {
		step = -step
	}
	target := clampRange(c.state.X+step, c.cfg.MinX, c.cfg.MaxX)
	dist := target - c.state.X
	if math.Abs(dist) < c.cfg.MinDistance {
		return
	}

	if dist > 0 {
		c.state.Direction = 1
	} else {
		c.state.Direction = -1
	}
	duration := time.Duration(math.Abs(dist) * float64(c.cfg.WalkTimePerUnit))

	c.state.walkFrom = c.state.DisplayX(now)
	c.state.walkStart = now
	c.state.walkEnd = now.Add(duration)
	c.state.X = target
	c.state.Walking = true
	c.sched.schedule(slotWalk, c.state.walkEnd)
}

// stopWalk freezes the pet where it is drawn right now.
func (c *Controller) stopWalk(now time.Time) {
	c.state.X = c.state.DisplayX(now)
	c.state.walkEnd = now
	c.state.Walking = false
	c.sched.cancel(slotWalk)
}
