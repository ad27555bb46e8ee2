package behavior

import (
	"log"
	"time"

	"doodlepet/internal/audio"
	"doodlepet/internal/pet"
)

// Category names a kind of reaction and the lines that go with it.
type Category string

const (
	CategoryIdle      Category = "idle"
	CategoryLowMood   Category = "lowMood"
	CategoryLowHunger Category = "lowHunger"
	CategoryLowHealth Category = "lowHealth"
	CategoryHappy     Category = "happy"
	CategorySurprised Category = "surprised"
	CategoryFeed      Category = "feed"
	CategoryPlay      Category = "play"
	CategoryHeal      Category = "heal"
	CategoryLevelUp   Category = "levelup"
)

const defaultReactionDuration = 3 * time.Second

// ReactionDefinition describes how the pet reacts to one category.
type ReactionDefinition struct {
	Category Category
	Mood     pet.Mood
	Duration time.Duration
	Cue      audio.Cue
}

var reactionDefinitions = map[Category]ReactionDefinition{
	CategoryIdle:      {Category: CategoryIdle, Mood: pet.MoodIdle, Duration: defaultReactionDuration},
	CategoryLowMood:   {Category: CategoryLowMood, Mood: pet.MoodIdle, Duration: defaultReactionDuration},
	CategoryLowHunger: {Category: CategoryLowHunger, Mood: pet.MoodAngry, Duration: defaultReactionDuration},
	CategoryLowHealth: {Category: CategoryLowHealth, Mood: pet.MoodSleep, Duration: defaultReactionDuration},
	CategoryHappy:     {Category: CategoryHappy, Mood: pet.MoodHappy, Duration: defaultReactionDuration, Cue: audio.CuePetHappy},
	CategorySurprised: {Category: CategorySurprised, Mood: pet.MoodSurprised, Duration: defaultReactionDuration, Cue: audio.CuePetSurprised},
	CategoryFeed:      {Category: CategoryFeed, Mood: pet.MoodHappy, Duration: defaultReactionDuration, Cue: audio.CueFeed},
	CategoryPlay:      {Category: CategoryPlay, Mood: pet.MoodHappy, Duration: defaultReactionDuration, Cue: audio.CuePlay},
	CategoryHeal:      {Category: CategoryHeal, Mood: pet.MoodLove, Duration: defaultReactionDuration, Cue: audio.CueHeal},
	CategoryLevelUp:   {Category: CategoryLevelUp, Mood: pet.MoodLove, Duration: 4 * time.Second, Cue: audio.CueSuccess},
}

// Reaction returns the definition of a category.
func Reaction(c Category) (ReactionDefinition, bool) {
	def, ok := reactionDefinitions[c]
	return def, ok
}

// speechFor picks what an idle pet complains about, most pressing first.
func speechFor(need pet.Need) Category {
	switch need {
	case pet.NeedHealth:
		return CategoryLowHealth
	case pet.NeedFood:
		return CategoryLowHunger
	case pet.NeedFun:
		return CategoryLowMood
	default:
		return CategoryIdle
	}
}

// React shows a reaction now. It replaces any active reaction, so only
// one expiry is ever pending.
func (c *Controller) React(category Category) {
	if !c.mounted {
		return
	}
	c.react(c.now(), category)
}

func (c *Controller) react(now time.Time, category Category) {
	def, ok := reactionDefinitions[category]
	if !ok {
		log.Printf("Unknown reaction %q", category)
		return
	}

	c.override = pet.Force(def.Mood)
	c.state.Reaction = category
	c.bubble = Bubble{}
	if c.messages != nil {
		if lines := c.messages.Pool(c.language, c.skin, string(category)); len(lines) > 0 {
			i := int(c.rand.Float64() * float64(len(lines)))
			if i >= len(lines) {
				i = len(lines) - 1
			}
			c.bubble = Bubble{Message: lines[i], Visible: true}
		}
	}
	c.sched.schedule(slotReaction, now.Add(def.Duration))
	c.sched.cancel(slotRelease)
	c.player.Play(def.Cue)

	if c.onStart != nil {
		c.onStart(category)
	}
}

func (c *Controller) expire() {
	ended := c.state.Reaction
	c.override = pet.NoOverride
	c.bubble = Bubble{}
	c.state.Reaction = ""
	if ended != "" && c.onEnd != nil {
		c.onEnd(ended)
	}
}

// observe fires a level-up reaction when the level went up since the last
// look.
func (c *Controller) observe(now time.Time, s pet.Stats) {
	if s.Level > c.lastLevel {
		log.Printf("Celebrating level %d", s.Level)
		c.react(now, CategoryLevelUp)
	}
	c.lastLevel = s.Level
}

// Feed feeds the pet and reacts to it.
func (c *Controller) Feed() pet.Stats {
	return c.care(CategoryFeed, c.pet.Feed)
}

// Play plays with the pet and reacts to it.
func (c *Controller) Play() pet.Stats {
	return c.care(CategoryPlay, c.pet.Play)
}

// Heal heals the pet and reacts to it.
func (c *Controller) Heal() pet.Stats {
	return c.care(CategoryHeal, c.pet.Heal)
}

// Poke is a click on the pet.
func (c *Controller) Poke() {
	if !c.mounted {
		return
	}
	c.react(c.now(), CategoryHappy)
}

func (c *Controller) care(category Category, action func() pet.Stats) pet.Stats {
	if !c.mounted {
		return c.pet.Stats()
	}
	now := c.now()
	s := action()
	c.react(now, category)
	c.observe(now, s)
	return s
}
