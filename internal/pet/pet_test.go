package pet

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

// fakeClock is a settable clock for deterministic engine tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
func (c *fakeClock) option() EngineOption    { return WithClock(c.Now) }

// stats returns s as saved at the clock's current time.
func (c *fakeClock) stats(s Stats) *Stats {
	s.LastUpdate = c.now
	return &s
}

// mockClock returns a clock fixed at a known instant.
func mockClock(t *testing.T) *fakeClock {
	t.Helper()
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNewEngineDefaults(t *testing.T) {
	clock := mockClock(t)
	e := NewEngine(nil, DefaultPolicy(), clock.option())

	s := e.Stats()
	if s.Hunger != DefaultHunger || s.Happiness != DefaultHappiness || s.Health != DefaultHealth {
		t.Errorf("Expected default stats 80/80/100, got %.1f/%.1f/%.1f", s.Hunger, s.Happiness, s.Health)
	}
	if s.Level != 1 || s.Experience != 0 || s.MaxExp != 100 {
		t.Errorf("Expected level 1 with 0/100 exp, got level %d with %.1f/%.0f", s.Level, s.Experience, s.MaxExp)
	}
	if !s.LastUpdate.Equal(clock.now) {
		t.Errorf("Expected lastUpdate %v, got %v", clock.now, s.LastUpdate)
	}
}

func TestMaxExpFor(t *testing.T) {
	policy := DefaultPolicy()
	tests := []struct {
		level int
		want  float64
	}{
		{0, 100},
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 338},
	}
	for _, tt := range tests {
		if got := MaxExpFor(tt.level, policy); got != tt.want {
			t.Errorf("MaxExpFor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	// Rounding must never flatten the curve, even with a tiny growth factor.
	flat := policy
	flat.BaseMaxExp = 1
	flat.ExpGrowth = 1.01
	prev := 0.0
	for level := 1; level <= 50; level++ {
		got := MaxExpFor(level, flat)
		if got <= prev {
			t.Fatalf("MaxExpFor(%d) = %v, not above level %d's %v", level, got, level-1, prev)
		}
		prev = got
	}

	// Levels past the cap share its ceiling.
	top := MaxExpFor(MaxLevel, policy)
	if math.IsInf(top, 0) || math.IsNaN(top) {
		t.Fatalf("Expected a finite ceiling at level %d, got %v", MaxLevel, top)
	}
	for _, level := range []int{MaxLevel + 1, 2000, math.MaxInt32, math.MaxInt} {
		if got := MaxExpFor(level, policy); got != top {
			t.Errorf("MaxExpFor(%d) = %v, want %v", level, got, top)
		}
	}
}

func TestDecay(t *testing.T) {
	policy := DefaultPolicy()
	tests := []struct {
		name    string
		start   Stats
		elapsed time.Duration
		want    Stats
	}{
		{
			name:    "comfortable pet regenerates up to the cap",
			start:   Stats{Hunger: 80, Happiness: 80, Health: 100},
			elapsed: time.Hour,
			want:    Stats{Hunger: 76, Happiness: 77, Health: 100},
		},
		{
			name:    "comfortable pet regenerates",
			start:   Stats{Hunger: 80, Happiness: 80, Health: 50},
			elapsed: time.Hour,
			want:    Stats{Hunger: 76, Happiness: 77, Health: 52},
		},
		{
			name:    "uncomfortable pet holds health",
			start:   Stats{Hunger: 40, Happiness: 40, Health: 50},
			elapsed: time.Hour,
			want:    Stats{Hunger: 36, Happiness: 37, Health: 50},
		},
		{
			name:    "starving pet loses health",
			start:   Stats{Hunger: 0, Happiness: 40, Health: 50},
			elapsed: 2 * time.Hour,
			want:    Stats{Hunger: 0, Happiness: 34, Health: 40},
		},
		{
			name:    "regeneration stops at the comfort line",
			start:   Stats{Hunger: 52, Happiness: 90, Health: 50},
			elapsed: time.Hour,
			want:    Stats{Hunger: 48, Happiness: 87, Health: 51},
		},
		{
			name:    "penalty starts when hunger runs out",
			start:   Stats{Hunger: 2, Happiness: 90, Health: 50},
			elapsed: time.Hour,
			want:    Stats{Hunger: 0, Happiness: 87, Health: 47.5},
		},
		{
			name:    "health bottoms out at zero",
			start:   Stats{Hunger: 0, Happiness: 0, Health: 3},
			elapsed: 10 * time.Hour,
			want:    Stats{Hunger: 0, Happiness: 0, Health: 0},
		},
		{
			name:    "no time means no change",
			start:   Stats{Hunger: 10, Happiness: 20, Health: 30},
			elapsed: 0,
			want:    Stats{Hunger: 10, Happiness: 20, Health: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(tt.start, tt.elapsed, policy)
			if !approx(got.Hunger, tt.want.Hunger) || !approx(got.Happiness, tt.want.Happiness) || !approx(got.Health, tt.want.Health) {
				t.Errorf("Decay() = %.4f/%.4f/%.4f, want %.4f/%.4f/%.4f",
					got.Hunger, got.Happiness, got.Health,
					tt.want.Hunger, tt.want.Happiness, tt.want.Health)
			}
		})
	}
}

func TestDecayIdempotence(t *testing.T) {
	policy := DefaultPolicy()
	starts := []Stats{
		{Hunger: 80, Happiness: 80, Health: 60},
		{Hunger: 51, Happiness: 90, Health: 50},
		{Hunger: 1, Happiness: 60, Health: 50},
		{Hunger: 50, Happiness: 50, Health: 99.5},
		{Hunger: 0, Happiness: 0, Health: 100},
	}

	for _, s := range starts {
		one := Decay(s, 30*time.Minute, policy)
		two := Decay(Decay(s, 10*time.Minute, policy), 20*time.Minute, policy)
		if !approx(one.Hunger, two.Hunger) || !approx(one.Happiness, two.Happiness) || !approx(one.Health, two.Health) {
			t.Errorf("start %+v: one step %+v differs from two steps %+v", s, one, two)
		}
	}

	// Arbitrary splits across every crossing of a long absence
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := Stats{Hunger: r.Float64() * 100, Happiness: r.Float64() * 100, Health: r.Float64() * 100}
		total := time.Duration(r.Int63n(int64(30 * time.Hour)))
		split := time.Duration(r.Int63n(int64(total) + 1))

		one := Decay(s, total, policy)
		two := Decay(Decay(s, split, policy), total-split, policy)
		if math.Abs(one.Health-two.Health) > 1e-6 || math.Abs(one.Hunger-two.Hunger) > 1e-6 || math.Abs(one.Happiness-two.Happiness) > 1e-6 {
			t.Fatalf("start %+v split %s/%s: one step %+v differs from two steps %+v", s, split, total-split, one, two)
		}
	}
}

func TestDecayMonotonicity(t *testing.T) {
	policy := DefaultPolicy()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		s := Stats{Hunger: r.Float64() * 100, Happiness: r.Float64() * 100, Health: r.Float64() * 100}
		prev := s
		for step := 0; step < 48; step++ {
			next := Decay(prev, 30*time.Minute, policy)
			if next.Hunger > prev.Hunger || next.Happiness > prev.Happiness {
				t.Fatalf("hunger or happiness increased: %+v -> %+v", prev, next)
			}
			starving := prev.Hunger == 0 || prev.Happiness == 0
			if starving && next.Health > prev.Health {
				t.Fatalf("health increased while starving: %+v -> %+v", prev, next)
			}
			if !starving && next.Hunger > 0 && next.Happiness > 0 && next.Health < prev.Health {
				t.Fatalf("health fell while nothing was empty: %+v -> %+v", prev, next)
			}
			prev = next
		}
	}
}

func TestMutators(t *testing.T) {
	tests := []struct {
		name   string
		action func(*Engine) Stats
		want   Stats
	}{
		{"feed", (*Engine).Feed, Stats{Hunger: 70, Happiness: 55, Health: 50, Experience: 5}},
		{"play", (*Engine).Play, Stats{Hunger: 35, Happiness: 75, Health: 50, Experience: 10}},
		{"heal", (*Engine).Heal, Stats{Hunger: 40, Happiness: 50, Health: 90, Experience: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := mockClock(t)
			e := NewEngine(clock.stats(Stats{Hunger: 40, Happiness: 50, Health: 50, Level: 1}), DefaultPolicy(), clock.option())

			got := tt.action(e)
			if got.Hunger != tt.want.Hunger || got.Happiness != tt.want.Happiness || got.Health != tt.want.Health || got.Experience != tt.want.Experience {
				t.Errorf("%s() = %.1f/%.1f/%.1f exp %.1f, want %.1f/%.1f/%.1f exp %.1f", tt.name,
					got.Hunger, got.Happiness, got.Health, got.Experience,
					tt.want.Hunger, tt.want.Happiness, tt.want.Health, tt.want.Experience)
			}
		})
	}
}

func TestMutatorSettlesDecayFirst(t *testing.T) {
	clock := mockClock(t)
	e := NewEngine(clock.stats(Stats{Hunger: 100, Happiness: 80, Health: 100, Level: 1}), DefaultPolicy(), clock.option())

	clock.Advance(5 * time.Hour)
	s := e.Feed()

	// 100 - 5h*4 = 80, then +30 clamps at 100. Applying the delta first
	// would leave 80 instead.
	if s.Hunger != MaxStat {
		t.Errorf("Expected hunger %d after decay then feed, got %.1f", MaxStat, s.Hunger)
	}
	if !s.LastUpdate.Equal(clock.now) {
		t.Errorf("Expected lastUpdate to move to now, got %v", s.LastUpdate)
	}
}

func TestFeedFromEmpty(t *testing.T) {
	clock := mockClock(t)
	e := NewEngine(clock.stats(Stats{Hunger: 0, Happiness: 50, Health: 50, Level: 1}), DefaultPolicy(), clock.option())

	if mood := Resolve(NoOverride, e.Stats()); mood != MoodAngry {
		t.Fatalf("Expected an empty belly to be angry, got %s", mood)
	}

	s := e.Feed()
	if s.Hunger <= 0 || s.Hunger > MaxStat {
		t.Errorf("Expected hunger in (0, 100] after feeding, got %.1f", s.Hunger)
	}
	if mood := Resolve(NoOverride, s); mood == MoodAngry {
		t.Errorf("Expected pet to stop being angry after feeding, got %s", mood)
	}
}

func TestLevelUpCarry(t *testing.T) {
	clock := mockClock(t)
	saved := clock.stats(Stats{Hunger: 80, Happiness: 80, Health: 100, Level: 1, Experience: 95, MaxExp: 100})
	e := NewEngine(saved, DefaultPolicy(), clock.option())

	s := e.Play()
	if s.Level != 2 {
		t.Errorf("Expected level 2, got %d", s.Level)
	}
	if s.Experience != 5 {
		t.Errorf("Expected 5 carried experience, got %.1f", s.Experience)
	}
	if s.MaxExp != 150 {
		t.Errorf("Expected maxExp 150, got %.0f", s.MaxExp)
	}
}

func TestLevelCap(t *testing.T) {
	clock := mockClock(t)
	policy := DefaultPolicy()
	top := MaxExpFor(MaxLevel, policy)
	saved := clock.stats(Stats{Hunger: 50, Happiness: 50, Health: 100, Level: MaxLevel, Experience: top - 2, MaxExp: top})
	e := NewEngine(saved, policy, clock.option())

	s := e.Feed()
	if s.Level != MaxLevel {
		t.Errorf("Expected to stay at level %d, got %d", MaxLevel, s.Level)
	}
	if s.Experience != top-1 || s.MaxExp != top {
		t.Errorf("Expected %.0f/%.0f, got %.0f/%.0f", top-1, top, s.Experience, s.MaxExp)
	}
}

func TestStatInvariantsUnderRandomUse(t *testing.T) {
	policy := DefaultPolicy()
	r := rand.New(rand.NewSource(1))

	for run := 0; run < 20; run++ {
		clock := mockClock(t)
		e := NewEngine(nil, policy, clock.option())
		level := 1

		for step := 0; step < 500; step++ {
			var s Stats
			switch r.Intn(5) {
			case 0:
				s = e.Feed()
			case 1:
				s = e.Play()
			case 2:
				s = e.Heal()
			case 3:
				clock.Advance(time.Duration(r.Int63n(int64(30 * time.Hour))))
				s = e.Stats()
			default:
				clock.Advance(time.Duration(r.Int63n(int64(time.Minute))))
				s = e.Checkpoint()
			}

			for name, v := range map[string]float64{"hunger": s.Hunger, "happiness": s.Happiness, "health": s.Health} {
				if v < MinStat || v > MaxStat {
					t.Fatalf("run %d step %d: %s out of range: %v", run, step, name, v)
				}
			}
			if s.Experience < 0 || s.Experience >= s.MaxExp {
				t.Fatalf("run %d step %d: experience %v outside [0, %v)", run, step, s.Experience, s.MaxExp)
			}
			if s.Level < level {
				t.Fatalf("run %d step %d: level fell from %d to %d", run, step, level, s.Level)
			}
			if s.MaxExp != MaxExpFor(s.Level, policy) {
				t.Fatalf("run %d step %d: maxExp %v does not match level %d", run, step, s.MaxExp, s.Level)
			}
			level = s.Level
		}
	}
}

func TestOfflineCap(t *testing.T) {
	clock := mockClock(t)
	policy := DefaultPolicy()
	start := Stats{Hunger: 100, Happiness: 100, Health: 100, Level: 1}

	capped := NewEngine(clock.stats(start), policy, clock.option())
	clock.Advance(10 * 24 * time.Hour)
	got := capped.Stats()

	want := Decay(start, policy.OfflineCap, policy)
	if !approx(got.Hunger, want.Hunger) || !approx(got.Health, want.Health) {
		t.Errorf("Expected a long absence to count as %s: got %+v, want %+v", policy.OfflineCap, got, want)
	}
}

func TestClockMovedBackwards(t *testing.T) {
	clock := mockClock(t)
	e := NewEngine(clock.stats(Stats{Hunger: 60, Happiness: 60, Health: 60, Level: 1}), DefaultPolicy(), clock.option())

	clock.Advance(-3 * time.Hour)
	s := e.Stats()
	if s.Hunger != 60 || s.Happiness != 60 || s.Health != 60 {
		t.Errorf("Expected no decay for a clock that went backwards, got %+v", s)
	}
	if !s.LastUpdate.Equal(clock.now) {
		t.Errorf("Expected lastUpdate reset to now, got %v", s.LastUpdate)
	}

	clock.Advance(time.Hour)
	if s := e.Stats(); !approx(s.Hunger, 56) {
		t.Errorf("Expected decay to resume from the reset point, got hunger %.2f", s.Hunger)
	}
}

func TestSanitize(t *testing.T) {
	clock := mockClock(t)
	policy := DefaultPolicy()
	tests := []struct {
		name  string
		saved Stats
		check func(t *testing.T, s Stats)
	}{
		{
			name:  "negative and oversized stats are clamped",
			saved: Stats{Hunger: -20, Happiness: 250, Health: math.NaN(), Level: 1, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Hunger != 0 || s.Happiness != 100 || s.Health != 0 {
					t.Errorf("Expected 0/100/0, got %.1f/%.1f/%.1f", s.Hunger, s.Happiness, s.Health)
				}
			},
		},
		{
			name:  "level below one is raised",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: -3, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != 1 || s.MaxExp != 100 {
					t.Errorf("Expected level 1 with maxExp 100, got level %d maxExp %.0f", s.Level, s.MaxExp)
				}
			},
		},
		{
			name:  "maxExp follows the level",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 3, MaxExp: 7, Experience: 10, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != 3 || s.MaxExp != 225 || s.Experience != 10 {
					t.Errorf("Expected level 3 with 10/225, got level %d with %.1f/%.0f", s.Level, s.Experience, s.MaxExp)
				}
			},
		},
		{
			name:  "overflowing experience is carried",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 1, Experience: 260, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != 3 || s.Experience != 10 || s.MaxExp != 225 {
					t.Errorf("Expected level 3 with 10/225, got level %d with %.1f/%.0f", s.Level, s.Experience, s.MaxExp)
				}
			},
		},
		{
			name:  "huge level is capped",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 3000000000, Experience: 10, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != MaxLevel || s.MaxExp != MaxExpFor(MaxLevel, policy) || s.Experience != 10 {
					t.Errorf("Expected level %d with 10/%.0f, got level %d with %.1f/%.0f",
						MaxLevel, MaxExpFor(MaxLevel, policy), s.Level, s.Experience, s.MaxExp)
				}
			},
		},
		{
			name:  "level just past the cap",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 2000, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != MaxLevel || math.IsInf(s.MaxExp, 0) {
					t.Errorf("Expected level %d with a finite maxExp, got level %d maxExp %v", MaxLevel, s.Level, s.MaxExp)
				}
			},
		},
		{
			name:  "enormous experience stops at the top level",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 1, Experience: 1e300, LastUpdate: clock.now},
			check: func(t *testing.T, s Stats) {
				if s.Level != MaxLevel {
					t.Errorf("Expected level %d, got %d", MaxLevel, s.Level)
				}
				if s.Experience >= s.MaxExp || s.Experience < 0 {
					t.Errorf("Expected experience below maxExp %.0f, got %v", s.MaxExp, s.Experience)
				}
			},
		},
		{
			name:  "future lastUpdate is pulled back",
			saved: Stats{Hunger: 50, Happiness: 50, Health: 50, Level: 1, LastUpdate: clock.now.Add(48 * time.Hour)},
			check: func(t *testing.T, s Stats) {
				if !s.LastUpdate.Equal(clock.now) {
					t.Errorf("Expected lastUpdate %v, got %v", clock.now, s.LastUpdate)
				}
				if s.Hunger != 50 {
					t.Errorf("Expected no decay, got hunger %.1f", s.Hunger)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := tt.saved
			e := NewEngine(&saved, policy, clock.option())
			tt.check(t, e.Stats())
		})
	}
}

func TestResetAndCheckpointEmit(t *testing.T) {
	clock := mockClock(t)
	var saved []Stats
	saver := SaverFunc(func(s Stats) { saved = append(saved, s) })
	e := NewEngine(clock.stats(Stats{Hunger: 10, Happiness: 10, Health: 10, Level: 4, Experience: 3}), DefaultPolicy(), clock.option(), WithSaver(saver))

	e.Heal()
	clock.Advance(time.Minute)
	e.Checkpoint()
	s := e.Reset()

	if len(saved) != 3 {
		t.Fatalf("Expected 3 saves, got %d", len(saved))
	}
	if s.Level != 1 || s.Hunger != DefaultHunger || s.Health != DefaultHealth {
		t.Errorf("Expected a new pet after reset, got %+v", s)
	}
	if saved[2] != s {
		t.Errorf("Expected reset stats to be saved, got %+v", saved[2])
	}
}

func TestMoodPriority(t *testing.T) {
	tests := []struct {
		name     string
		override Override
		stats    Stats
		want     Mood
	}{
		{"all low: health wins", NoOverride, Stats{Hunger: 20, Happiness: 20, Health: 20}, MoodSleep},
		{"hunger over happiness", NoOverride, Stats{Hunger: 20, Happiness: 20, Health: 80}, MoodAngry},
		{"bored", NoOverride, Stats{Hunger: 80, Happiness: 20, Health: 80}, MoodIdle},
		{"content", NoOverride, Stats{Hunger: 80, Happiness: 80, Health: 80}, MoodIdle},
		{"threshold is exclusive", NoOverride, Stats{Hunger: 30, Happiness: 30, Health: 30}, MoodIdle},
		{"override wins", Force(MoodLove), Stats{Hunger: 20, Happiness: 20, Health: 20}, MoodLove},
		{"forced idle is honored", Force(MoodIdle), Stats{Hunger: 80, Happiness: 80, Health: 10}, MoodIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.override, tt.stats); got != tt.want {
				t.Errorf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNeedOf(t *testing.T) {
	tests := []struct {
		stats Stats
		want  Need
	}{
		{Stats{Hunger: 10, Happiness: 10, Health: 10}, NeedHealth},
		{Stats{Hunger: 10, Happiness: 10, Health: 90}, NeedFood},
		{Stats{Hunger: 90, Happiness: 10, Health: 90}, NeedFun},
		{Stats{Hunger: 90, Happiness: 90, Health: 90}, NeedNone},
	}
	for _, tt := range tests {
		if got := NeedOf(tt.stats); got != tt.want {
			t.Errorf("NeedOf(%+v) = %d, want %d", tt.stats, got, tt.want)
		}
	}
}

func TestOverrideZeroValue(t *testing.T) {
	var o Override
	if _, ok := o.Get(); ok {
		t.Error("Expected the zero Override to be unset")
	}
	if m, ok := Force(MoodIdle).Get(); !ok || m != MoodIdle {
		t.Errorf("Expected Force(MoodIdle) to be set to IDLE, got %s %v", m, ok)
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name  string
		mood  Mood
		stats Stats
		want  string
	}{
		{"content", MoodIdle, Stats{Hunger: 80, Happiness: 80, Health: 80}, StatusEmojiContent},
		{"bored", MoodIdle, Stats{Hunger: 80, Happiness: 10, Health: 80}, StatusEmojiContent + StatusEmojiBored},
		{"hungry face explains itself", MoodAngry, Stats{Hunger: 10, Happiness: 80, Health: 80}, StatusEmojiAngry},
		{"sick face explains itself", MoodSleep, Stats{Hunger: 80, Happiness: 80, Health: 10}, StatusEmojiSleeping},
		{"happy but hungry", MoodHappy, Stats{Hunger: 10, Happiness: 80, Health: 80}, StatusEmojiHappy + StatusEmojiHungry},
		{"loving", MoodLove, Stats{Hunger: 80, Happiness: 80, Health: 80}, StatusEmojiLove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStatus(tt.mood, tt.stats); got != tt.want {
				t.Errorf("GetStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetStatusWithLabel(t *testing.T) {
	tests := []struct {
		mood  Mood
		stats Stats
		want  string
	}{
		{MoodIdle, Stats{Hunger: 80, Happiness: 80, Health: 80}, StatusEmojiContent + " Content"},
		{MoodSleep, Stats{Hunger: 80, Happiness: 80, Health: 10}, StatusEmojiSleeping + " Sick, needs healing"},
		{MoodAngry, Stats{Hunger: 10, Happiness: 80, Health: 80}, StatusEmojiAngry + " Hungry!"},
		{MoodSurprised, Stats{Hunger: 80, Happiness: 80, Health: 80}, StatusEmojiSurprised + " Surprised!"},
	}
	for _, tt := range tests {
		if got := GetStatusWithLabel(tt.mood, tt.stats); got != tt.want {
			t.Errorf("GetStatusWithLabel(%s) = %q, want %q", tt.mood, got, tt.want)
		}
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("Expected default policy to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Policy)
	}{
		{"negative rate", func(p *Policy) { p.HungerDecayPerHour = -1 }},
		{"negative delta", func(p *Policy) { p.FeedHunger = -5 }},
		{"zero offline cap", func(p *Policy) { p.OfflineCap = 0 }},
		{"zero base exp", func(p *Policy) { p.BaseMaxExp = 0 }},
		{"flat growth", func(p *Policy) { p.ExpGrowth = 1 }},
		{"fractional base exp", func(p *Policy) { p.BaseMaxExp = 0.4 }},
		{"overflowing growth", func(p *Policy) { p.ExpGrowth = 1e10 }},
		{"NaN rate", func(p *Policy) { p.HungerDecayPerHour = math.NaN() }},
		{"infinite delta", func(p *Policy) { p.PlayExp = math.Inf(1) }},
		{"NaN base exp", func(p *Policy) { p.BaseMaxExp = math.NaN() }},
		{"infinite growth", func(p *Policy) { p.ExpGrowth = math.Inf(1) }},
		{"NaN growth", func(p *Policy) { p.ExpGrowth = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.modify(&p)
			if err := p.Validate(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSkins(t *testing.T) {
	if got := LookupSkin("unknown").ID; got != DefaultSkin {
		t.Errorf("Expected unknown skin to fall back to %s, got %s", DefaultSkin, got)
	}
	if got := LookupSkin(SkinCatOrange).EyeRange; got != 2 {
		t.Errorf("Expected cat eye range 2, got %v", got)
	}

	id := DefaultSkin
	seen := map[string]bool{}
	for range SkinOrder {
		seen[id] = true
		id = NextSkin(id)
	}
	if id != DefaultSkin || len(seen) != len(SkinOrder) {
		t.Errorf("Expected NextSkin to cycle through all %d skins, saw %d and ended on %s", len(SkinOrder), len(seen), id)
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.0, 1.0},
		{0.1, MinScale},
		{9, MaxScale},
		{1.24, 1.2},
		{math.NaN(), DefaultScale},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in); !approx(got, tt.want) {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
