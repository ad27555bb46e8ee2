package behavior

import "time"

// slot names one pending timer. Each concern owns exactly one slot, so
// scheduling it again replaces the earlier deadline.
type slot int

const (
	slotPlanner slot = iota
	slotWalk
	slotReaction
	slotSway
	slotBlink
	slotBlinkEnd
	slotRelease
	slotCount
)

func (s slot) String() string {
	switch s {
	case slotPlanner:
		return "planner"
	case slotWalk:
		return "walk"
	case slotReaction:
		return "reaction"
	case slotSway:
		return "sway"
	case slotBlink:
		return "blink"
	case slotBlinkEnd:
		return "blink-end"
	case slotRelease:
		return "release"
	default:
		return "unknown"
	}
}

type scheduler struct {
	due   [slotCount]time.Time
	armed [slotCount]bool
}

func (s *scheduler) schedule(k slot, at time.Time) {
	s.due[k] = at
	s.armed[k] = true
}

func (s *scheduler) cancel(k slot) {
	s.armed[k] = false
}

func (s *scheduler) cancelAll() {
	for k := range s.armed {
		s.armed[k] = false
	}
}

func (s *scheduler) pending(k slot) bool {
	return s.armed[k]
}

// deadline returns when k fires, if it is armed.
func (s *scheduler) deadline(k slot) (time.Time, bool) {
	return s.due[k], s.armed[k]
}

// pop disarms and returns the earliest slot due at or before now. Ties go
// to the lower slot.
func (s *scheduler) pop(now time.Time) (slot, bool) {
	best := slotCount
	for k := slot(0); k < slotCount; k++ {
		if !s.armed[k] || s.due[k].After(now) {
			continue
		}
		if best == slotCount || s.due[k].Before(s.due[best]) {
			best = k
		}
	}
	if best == slotCount {
		return 0, false
	}
	s.armed[best] = false
	return best, true
}
