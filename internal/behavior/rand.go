package behavior

import (
	"math/rand"
	"time"
)

// Rand is the controller's only source of randomness.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewRand returns a Rand seeded with seed. A zero seed uses the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
