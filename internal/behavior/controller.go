// Package behavior runs the pet's autonomous life on screen: it wanders,
// talks, reacts to care and being dragged, blinks and follows the cursor.
//
// A Controller is driven from a single event loop. Timers are deadlines
// checked by Advance, so a host that ticks late simply fires them late.
package behavior

import (
	"log"
	"math"
	"time"

	"doodlepet/internal/audio"
	"doodlepet/internal/pet"
)

// Pet is the stats source the controller reads and cares for.
type Pet interface {
	Stats() pet.Stats
	Feed() pet.Stats
	Play() pet.Stats
	Heal() pet.Stats
}

// Messages supplies the lines a pet can say.
type Messages interface {
	Pool(language, skin, category string) []string
}

// Controller owns the pet's on-screen behavior.
// It is not safe for concurrent use.
type Controller struct {
	pet      Pet
	messages Messages
	player   audio.Player
	rand     Rand
	clock    func() time.Time
	cfg      Config

	language string
	skin     string
	eyeRange float64

	onStart func(Category)
	onEnd   func(Category)

	mounted   bool
	sched     scheduler
	state     State
	override  pet.Override
	bubble    Bubble
	lastLevel int
	pointerX  float64
	pointerY  float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used by calls that don't carry a time.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.clock = now }
}

// WithRand sets the source of randomness.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rand = r }
}

// WithPlayer sets the audio player. Cues are fire-and-forget.
func WithPlayer(p audio.Player) Option {
	return func(c *Controller) { c.player = audio.Safe(p) }
}

// WithMessages sets the catalog reactions draw their lines from.
func WithMessages(m Messages) Option {
	return func(c *Controller) { c.messages = m }
}

// WithLocale sets the initial language and skin.
func WithLocale(language, skin string) Option {
	return func(c *Controller) { c.SetLocale(language, skin) }
}

// WithReactionHooks registers callbacks for reactions starting and ending.
// A reaction replaced by another one never ends on its own.
func WithReactionHooks(started, ended func(Category)) Option {
	return func(c *Controller) {
		c.onStart = started
		c.onEnd = ended
	}
}

// New returns an unmounted controller for p.
func New(p Pet, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		pet:      p,
		player:   audio.Muted{},
		clock:    time.Now,
		cfg:      cfg,
		override: pet.NoOverride,
	}
	c.SetLocale("", pet.DefaultSkin)
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = NewRand(0)
	}
	return c
}

// Mount places the pet and arms the planner and the blink timer.
func (c *Controller) Mount(now time.Time) {
	if c.mounted {
		return
	}
	c.mounted = true
	c.state = State{
		X:         clampRange(c.cfg.StartX, c.cfg.MinX, c.cfg.MaxX),
		Y:         c.cfg.RestY,
		Direction: 1,
	}
	c.override = pet.NoOverride
	c.bubble = Bubble{}
	c.lastLevel = c.pet.Stats().Level

	c.sched.schedule(slotPlanner, now.Add(c.cfg.FirstPlan))
	c.scheduleBlink(now)
	log.Printf("Pet mounted at x=%.0f", c.state.X)
}

// Teardown cancels every pending timer. Until the next Mount, Advance and
// all pointer and action calls do nothing.
func (c *Controller) Teardown() {
	if !c.mounted {
		return
	}
	c.sched.cancelAll()
	c.mounted = false
	c.state.Dragging = false
	c.state.Walking = false
	c.state.Blink = false
	c.state.HairSway = 0
	log.Printf("Pet unmounted")
}

// Mounted reports whether the controller is running.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// Advance fires every timer due at or before now, earliest first. Stats
// are read first so a level-up shows on the frame it happened.
func (c *Controller) Advance(now time.Time) {
	if !c.mounted {
		return
	}
	c.observe(now, c.pet.Stats())
	for {
		k, ok := c.sched.pop(now)
		if !ok {
			return
		}
		c.fire(k, now)
	}
}

func (c *Controller) fire(k slot, now time.Time) {
	switch k {
	case slotPlanner:
		c.plan(now)
		jitter := time.Duration(c.rand.Float64() * float64(c.cfg.PlanJitter))
		c.sched.schedule(slotPlanner, now.Add(c.cfg.PlanBase+jitter))
	case slotWalk:
		c.state.Walking = false
	case slotReaction:
		c.expire()
	case slotSway:
		c.state.HairSway = 0
	case slotBlink:
		c.state.Blink = true
		c.sched.schedule(slotBlinkEnd, now.Add(c.cfg.BlinkDuration))
		c.scheduleBlink(now)
	case slotBlinkEnd:
		c.state.Blink = false
	case slotRelease:
		c.override = pet.NoOverride
	}
}

// SetViewport sets the horizontal range the planner walks within.
func (c *Controller) SetViewport(minX, maxX float64) {
	if maxX < minX {
		maxX = minX
	}
	c.cfg.MinX = minX
	c.cfg.MaxX = maxX
}

// SetLocale switches the language and skin reactions speak in. The eye
// range follows the skin.
func (c *Controller) SetLocale(language, skin string) {
	s := pet.LookupSkin(skin)
	c.language = language
	c.skin = s.ID
	c.eyeRange = s.EyeRange
}

// State returns what to draw.
func (c *Controller) State() State {
	return c.state
}

// Bubble returns the speech bubble.
func (c *Controller) Bubble() Bubble {
	return c.bubble
}

// Override returns the active mood override.
func (c *Controller) Override() pet.Override {
	return c.override
}

// EffectiveMood returns the face to show: the active reaction's mood, or
// the one the stats call for.
func (c *Controller) EffectiveMood() pet.Mood {
	return pet.Resolve(c.override, c.pet.Stats())
}

func (c *Controller) now() time.Time {
	return c.clock()
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
