package pet

import (
	"log"
	"time"
)

// Saver receives every stats change. Saving is fire-and-forget: the engine
// never waits on it and never sees its errors.
type Saver interface {
	SaveStats(Stats)
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(Stats)

// SaveStats implements Saver
func (f SaverFunc) SaveStats(s Stats) { f(s) }

// Engine owns Stats and keeps them under real-time decay.
// It is not safe for concurrent use; the host calls it from its event loop.
type Engine struct {
	stats  Stats
	policy Policy
	now    func() time.Time
	saver  Saver
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the wall clock, for tests and replays.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithSaver sets the collaborator that persists every change.
func WithSaver(s Saver) EngineOption {
	return func(e *Engine) { e.saver = s }
}

// NewEngine starts an engine from previously saved stats. A nil saved
// value adopts a new pet. Saved values are repaired rather than rejected,
// and the time spent offline is applied on the first read.
func NewEngine(saved *Stats, policy Policy, opts ...EngineOption) *Engine {
	e := &Engine{
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}

	now := e.now()
	if saved == nil {
		e.stats = NewStats(now, policy)
		log.Printf("Adopted a new pet (level %d)", e.stats.Level)
	} else {
		e.stats = sanitize(*saved, now, policy)
		log.Printf("Loaded pet: level %d, last update %s", e.stats.Level, e.stats.LastUpdate.Format(time.RFC3339))
	}
	return e
}

// Stats returns the current stats with all decay up to now applied.
func (e *Engine) Stats() Stats {
	e.settle()
	return e.stats
}

// Feed fills the belly, cheers the pet up a little and grants experience.
func (e *Engine) Feed() Stats {
	return e.mutate("feed", func(s *Stats) {
		s.Hunger += e.policy.FeedHunger
		s.Happiness += e.policy.FeedHappiness
		s.Experience += e.policy.FeedExp
	})
}

// Play makes the pet happy at the cost of some hunger.
func (e *Engine) Play() Stats {
	return e.mutate("play", func(s *Stats) {
		s.Happiness += e.policy.PlayHappiness
		s.Hunger -= e.policy.PlayHunger
		s.Experience += e.policy.PlayExp
	})
}

// Heal restores health.
func (e *Engine) Heal() Stats {
	return e.mutate("heal", func(s *Stats) {
		s.Health += e.policy.HealHealth
		s.Experience += e.policy.HealExp
	})
}

// Reset replaces the pet with a newly adopted one.
func (e *Engine) Reset() Stats {
	e.stats = NewStats(e.now(), e.policy)
	log.Printf("Pet was reset")
	e.emit()
	return e.stats
}

// Checkpoint settles decay and hands the result to the saver.
func (e *Engine) Checkpoint() Stats {
	e.settle()
	e.emit()
	return e.stats
}

// mutate settles decay strictly before applying the action's delta.
func (e *Engine) mutate(action string, apply func(*Stats)) Stats {
	e.settle()

	s := e.stats
	apply(&s)
	s.Hunger = clamp(s.Hunger)
	s.Happiness = clamp(s.Happiness)
	s.Health = clamp(s.Health)
	if gained := levelUp(&s, e.policy); gained > 0 {
		log.Printf("Pet reached level %d", s.Level)
	}
	e.stats = s

	log.Printf("%s: hunger %.1f, happiness %.1f, health %.1f, exp %.1f/%.0f",
		action, s.Hunger, s.Happiness, s.Health, s.Experience, s.MaxExp)
	e.emit()
	return s
}

func (e *Engine) settle() {
	now := e.now()
	elapsed := now.Sub(e.stats.LastUpdate)
	if elapsed <= 0 {
		// A clock that moved backwards must not leave lastUpdate ahead of now.
		if elapsed < 0 {
			e.stats.LastUpdate = now
		}
		return
	}
	if elapsed > e.policy.OfflineCap {
		log.Printf("Capping %s of absence to %s", elapsed.Round(time.Minute), e.policy.OfflineCap)
		elapsed = e.policy.OfflineCap
	}
	e.stats = Decay(e.stats, elapsed, e.policy)
	e.stats.LastUpdate = now
}

func (e *Engine) emit() {
	if e.saver != nil {
		e.saver.SaveStats(e.stats)
	}
}
