package core

import (
	"math/rand"
	"time"
)

// Source supplies random colors. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
