package pet

import (
	"encoding/json"
	"math"
	"time"
)

// Stats is the pet's persisted condition.
type Stats struct {
	Hunger     float64   `json:"hunger"`    // 0 = starving
	Happiness  float64   `json:"happiness"` // 0 = depressed
	Health     float64   `json:"health"`    // 0 = sick
	Level      int       `json:"level"`
	Experience float64   `json:"experience"`
	MaxExp     float64   `json:"maxExp"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// statsJSON keeps lastUpdate as epoch milliseconds, the format of blobs
// saved by earlier releases.
type statsJSON struct {
	Hunger     float64 `json:"hunger"`
	Happiness  float64 `json:"happiness"`
	Health     float64 `json:"health"`
	Level      int     `json:"level"`
	Experience float64 `json:"experience"`
	MaxExp     float64 `json:"maxExp"`
	LastUpdate int64   `json:"lastUpdate"`
}

// MarshalJSON implements json.Marshaler
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(statsJSON{
		Hunger:     s.Hunger,
		Happiness:  s.Happiness,
		Health:     s.Health,
		Level:      s.Level,
		Experience: s.Experience,
		MaxExp:     s.MaxExp,
		LastUpdate: s.LastUpdate.UnixMilli(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. Fields missing from data keep
// the receiver's values, so decoding over defaults merges the two.
func (s *Stats) UnmarshalJSON(data []byte) error {
	raw := statsJSON{
		Hunger:     s.Hunger,
		Happiness:  s.Happiness,
		Health:     s.Health,
		Level:      s.Level,
		Experience: s.Experience,
		MaxExp:     s.MaxExp,
	}
	if !s.LastUpdate.IsZero() {
		raw.LastUpdate = s.LastUpdate.UnixMilli()
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Stats{
		Hunger:     raw.Hunger,
		Happiness:  raw.Happiness,
		Health:     raw.Health,
		Level:      raw.Level,
		Experience: raw.Experience,
		MaxExp:     raw.MaxExp,
	}
	if raw.LastUpdate != 0 {
		s.LastUpdate = time.UnixMilli(raw.LastUpdate).UTC()
	}
	return nil
}

// NewStats returns the stats of a freshly adopted pet.
func NewStats(now time.Time, policy Policy) Stats {
	return Stats{
		Hunger:     DefaultHunger,
		Happiness:  DefaultHappiness,
		Health:     DefaultHealth,
		Level:      StartingLevel,
		Experience: 0,
		MaxExp:     MaxExpFor(StartingLevel, policy),
		LastUpdate: now,
	}
}

// MaxExpFor returns the experience ceiling of a level. It grows
// geometrically and is strictly increasing even after rounding. Levels
// outside [StartingLevel, MaxLevel] are clamped first.
func MaxExpFor(level int, policy Policy) float64 {
	level = min(max(level, StartingLevel), MaxLevel)
	ceiling := math.Round(policy.BaseMaxExp)
	for l := StartingLevel + 1; l <= level; l++ {
		next := math.Round(policy.BaseMaxExp * math.Pow(policy.ExpGrowth, float64(l-1)))
		if next <= ceiling {
			next = ceiling + 1
		}
		ceiling = next
	}
	return ceiling
}

// sanitize repairs a loaded or imported blob: stats are clamped, the level
// and its ceiling are made consistent, overflowing experience is carried
// into level-ups, and a lastUpdate from the future is pulled back to now.
func sanitize(s Stats, now time.Time, policy Policy) Stats {
	s.Hunger = clamp(s.Hunger)
	s.Happiness = clamp(s.Happiness)
	s.Health = clamp(s.Health)
	s.Level = min(max(s.Level, StartingLevel), MaxLevel)
	s.MaxExp = MaxExpFor(s.Level, policy)
	if math.IsNaN(s.Experience) || s.Experience < 0 {
		s.Experience = 0
	}
	if math.IsInf(s.Experience, 0) {
		s.Experience = 0
	}
	levelUp(&s, policy)
	if s.LastUpdate.IsZero() || s.LastUpdate.After(now) {
		s.LastUpdate = now
	}
	return s
}

// levelUp carries overflowing experience into new levels and returns how
// many levels were gained. At MaxLevel experience stops one short of the
// ceiling.
func levelUp(s *Stats, policy Policy) int {
	gained := 0
	for s.Experience >= s.MaxExp && s.Level < MaxLevel {
		s.Experience -= s.MaxExp
		s.Level++
		s.MaxExp = MaxExpFor(s.Level, policy)
		gained++
	}
	if s.Level >= MaxLevel && s.Experience >= s.MaxExp {
		s.Experience = s.MaxExp - 1
	}
	return gained
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
