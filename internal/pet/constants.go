package pet

import (
	"fmt"
	"math"
	"time"
)

// Game constants
const (
	MaxStat          = 100
	MinStat          = 0
	LowStatThreshold = 30 // Below this a stat drives mood and behavior
	ComfortThreshold = 50 // Health regenerates while hunger and happiness stay at or above this

	// Defaults for a freshly adopted pet
	DefaultHunger    = 80
	DefaultHappiness = 80
	DefaultHealth    = MaxStat
	StartingLevel    = 1
	MaxLevel         = 99 // Experience stops accumulating here

	// Status emojis
	StatusEmojiContent   = "😸"
	StatusEmojiHappy     = "😻"
	StatusEmojiSleeping  = "😴"
	StatusEmojiSurprised = "🙀"
	StatusEmojiAngry     = "😾"
	StatusEmojiLove      = "💕"
	StatusEmojiBored     = "😿"
	StatusEmojiSick      = "🤢"
	StatusEmojiHungry    = "🍖"
)

// Policy holds every tunable number of the stats engine.
// Rates are per hour of wall-clock time.
type Policy struct {
	HungerDecayPerHour    float64       `yaml:"hunger_decay_per_hour" env:"HUNGER_DECAY_PER_HOUR"`
	HappinessDecayPerHour float64       `yaml:"happiness_decay_per_hour" env:"HAPPINESS_DECAY_PER_HOUR"`
	HealthPenaltyPerHour  float64       `yaml:"health_penalty_per_hour" env:"HEALTH_PENALTY_PER_HOUR"`
	HealthRegenPerHour    float64       `yaml:"health_regen_per_hour" env:"HEALTH_REGEN_PER_HOUR"`
	OfflineCap            time.Duration `yaml:"offline_cap" env:"OFFLINE_CAP"`

	FeedHunger    float64 `yaml:"feed_hunger" env:"FEED_HUNGER"`
	FeedHappiness float64 `yaml:"feed_happiness" env:"FEED_HAPPINESS"`
	FeedExp       float64 `yaml:"feed_exp" env:"FEED_EXP"`
	PlayHappiness float64 `yaml:"play_happiness" env:"PLAY_HAPPINESS"`
	PlayHunger    float64 `yaml:"play_hunger" env:"PLAY_HUNGER"` // Hunger spent by playing
	PlayExp       float64 `yaml:"play_exp" env:"PLAY_EXP"`
	HealHealth    float64 `yaml:"heal_health" env:"HEAL_HEALTH"`
	HealExp       float64 `yaml:"heal_exp" env:"HEAL_EXP"`

	BaseMaxExp float64 `yaml:"base_max_exp" env:"BASE_MAX_EXP"`
	ExpGrowth  float64 `yaml:"exp_growth" env:"EXP_GROWTH"`
}

// DefaultPolicy returns the tuned constants. A neglected pet goes from
// well fed to starving in about a day.
func DefaultPolicy() Policy {
	return Policy{
		HungerDecayPerHour:    4,
		HappinessDecayPerHour: 3,
		HealthPenaltyPerHour:  5,
		HealthRegenPerHour:    2,
		OfflineCap:            24 * time.Hour,

		FeedHunger:    30,
		FeedHappiness: 5,
		FeedExp:       5,
		PlayHappiness: 25,
		PlayHunger:    5,
		PlayExp:       10,
		HealHealth:    40,
		HealExp:       5,

		BaseMaxExp: 100,
		ExpGrowth:  1.5,
	}
}

// Validate reports constants that would break the stat invariants.
func (p Policy) Validate() error {
	rates := map[string]float64{
		"hunger_decay_per_hour":    p.HungerDecayPerHour,
		"happiness_decay_per_hour": p.HappinessDecayPerHour,
		"health_penalty_per_hour":  p.HealthPenaltyPerHour,
		"health_regen_per_hour":    p.HealthRegenPerHour,
		"feed_hunger":              p.FeedHunger,
		"feed_happiness":           p.FeedHappiness,
		"feed_exp":                 p.FeedExp,
		"play_happiness":           p.PlayHappiness,
		"play_hunger":              p.PlayHunger,
		"play_exp":                 p.PlayExp,
		"heal_health":              p.HealHealth,
		"heal_exp":                 p.HealExp,
	}
	rates["base_max_exp"] = p.BaseMaxExp
	rates["exp_growth"] = p.ExpGrowth
	for name, v := range rates {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("policy %s must be a finite number, got %v", name, v)
		}
		if v < 0 {
			return fmt.Errorf("policy %s must not be negative, got %v", name, v)
		}
	}
	if p.OfflineCap <= 0 {
		return fmt.Errorf("policy offline_cap must be positive, got %s", p.OfflineCap)
	}
	if p.BaseMaxExp < 1 {
		return fmt.Errorf("policy base_max_exp must be at least 1, got %v", p.BaseMaxExp)
	}
	if p.ExpGrowth <= 1 {
		return fmt.Errorf("policy exp_growth must be greater than 1, got %v", p.ExpGrowth)
	}
	if math.IsInf(MaxExpFor(MaxLevel, p), 0) {
		return fmt.Errorf("policy exp_growth %v overflows the level %d ceiling", p.ExpGrowth, MaxLevel)
	}
	return nil
}
