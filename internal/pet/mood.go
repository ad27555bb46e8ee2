package pet

// Mood is the face the pet shows.
type Mood int

const (
	MoodIdle Mood = iota
	MoodHappy
	MoodSleep
	MoodSurprised
	MoodAngry
	MoodLove
)

// String returns the mood name used in logs and catalogs.
func (m Mood) String() string {
	switch m {
	case MoodIdle:
		return "IDLE"
	case MoodHappy:
		return "HAPPY"
	case MoodSleep:
		return "SLEEP"
	case MoodSurprised:
		return "SURPRISED"
	case MoodAngry:
		return "ANGRY"
	case MoodLove:
		return "LOVE"
	default:
		return "UNKNOWN"
	}
}

// Override is an optional mood that wins over the stat-derived one.
// The zero value defers to the stats; Force(MoodIdle) shows a genuinely
// idle face even when the stats would say otherwise.
type Override struct {
	mood Mood
	set  bool
}

// NoOverride defers to the stat-derived mood.
var NoOverride = Override{}

// Force returns an override showing m.
func Force(m Mood) Override {
	return Override{mood: m, set: true}
}

// Get returns the forced mood and whether one is set.
func (o Override) Get() (Mood, bool) {
	return o.mood, o.set
}

// Need is the pet's most pressing lack, in priority order.
type Need int

const (
	NeedNone Need = iota
	NeedHealth
	NeedFood
	NeedFun
)

// NeedOf checks health before hunger before happiness. Health is the
// terminal resource, so it always wins a tie.
func NeedOf(s Stats) Need {
	switch {
	case s.Health < LowStatThreshold:
		return NeedHealth
	case s.Hunger < LowStatThreshold:
		return NeedFood
	case s.Happiness < LowStatThreshold:
		return NeedFun
	default:
		return NeedNone
	}
}

// Baseline returns the mood the stats alone call for.
func Baseline(s Stats) Mood {
	switch NeedOf(s) {
	case NeedHealth:
		return MoodSleep
	case NeedFood:
		return MoodAngry
	default:
		// Bored and content share the idle face; boredom only shows in behavior.
		return MoodIdle
	}
}

// Resolve returns the effective mood: an active override, else the baseline.
func Resolve(o Override, s Stats) Mood {
	if m, ok := o.Get(); ok {
		return m
	}
	return Baseline(s)
}
