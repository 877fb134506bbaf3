package simulation

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies the random numbers of the simulation
type RandomSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a goroutine-safe RandomSource seeded with seed.
// A zero seed uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// FixedRandom always returns the same fraction of the requested range
type FixedRandom struct {
	Fraction float64
}

func (f FixedRandom) Intn(n int) int {
	v := int(f.Fraction * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (f FixedRandom) Float64() float64 {
	if f.Fraction >= 1 {
		return 0.999999
	}
	return f.Fraction
}

// IntBetween returns a value in [min, max]
func IntBetween(r RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// FloatBetween returns a value in [min, max)
func FloatBetween(r RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}
