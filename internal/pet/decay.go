package pet

import "time"

// Values this close to a threshold count as having crossed it.
const thresholdEpsilon = 1e-9

// Decay applies elapsed wall-clock time of passive change to s.
//
// Hunger and happiness fall linearly. Health falls while either of them is
// empty and regenerates while both are comfortable. Because the health rate
// depends on the other two, the interval is integrated piecewise between the
// moments hunger or happiness cross the comfort line or run out, which makes
// one long step equal to any split of it.
func Decay(s Stats, elapsed time.Duration, policy Policy) Stats {
	if elapsed <= 0 {
		return s
	}
	total := elapsed.Hours()
	t := 0.0
	for t < total {
		next := total
		for _, bp := range crossings(s, policy) {
			if t+bp < next {
				next = t + bp
			}
		}
		dt := next - t
		if dt <= 0 {
			dt = total - t
			next = total
		}

		rate := healthRate(s, dt, policy)
		s.Hunger = clamp(s.Hunger - policy.HungerDecayPerHour*dt)
		s.Happiness = clamp(s.Happiness - policy.HappinessDecayPerHour*dt)
		s.Health = clamp(s.Health + rate*dt)
		t = next
	}
	return s
}

// crossings returns the hours until hunger or happiness next reaches the
// comfort threshold or zero.
func crossings(s Stats, policy Policy) []float64 {
	var out []float64
	add := func(value, rate float64) {
		if rate <= 0 {
			return
		}
		if value > ComfortThreshold+thresholdEpsilon {
			out = append(out, (value-ComfortThreshold)/rate)
		}
		if value > thresholdEpsilon {
			out = append(out, value/rate)
		}
	}
	add(s.Hunger, policy.HungerDecayPerHour)
	add(s.Happiness, policy.HappinessDecayPerHour)
	return out
}

// healthRate classifies a segment by its midpoint, where the rate is
// guaranteed constant.
func healthRate(s Stats, dt float64, policy Policy) float64 {
	hunger := clamp(s.Hunger - policy.HungerDecayPerHour*dt/2)
	happiness := clamp(s.Happiness - policy.HappinessDecayPerHour*dt/2)
	switch {
	case hunger <= thresholdEpsilon || happiness <= thresholdEpsilon:
		return -policy.HealthPenaltyPerHour
	case hunger >= ComfortThreshold && happiness >= ComfortThreshold:
		return policy.HealthRegenPerHour
	default:
		return 0
	}
}
