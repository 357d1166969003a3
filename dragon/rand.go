package dragon

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the random source every decision point draws from. *rand.Rand
// satisfies it; tests inject a seeded one for reproducible runs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source (0 => time-based).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomScore averages two uniform draws over [0,100], so moderate scores
// are more common than extremes.
func randomScore(r Rand) int {
	v1 := r.Float64() * 100
	v2 := r.Float64() * 100
	return int(math.Round((v1 + v2) / 2))
}

func pick[T any](r Rand, options []T) T {
	return options[r.Intn(len(options))]
}

// randRange returns an integer uniformly drawn from [min, max].
func randRange(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// randReader adapts a Rand to io.Reader so identifiers can be drawn from
// the same seeded stream as the rest of the simulation.
type randReader struct {
	r Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Intn(256))
	}
	return len(p), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 { return clampFloat(v, -100, 100) }

func roundTenth(v float64) float64 { return math.Round(v*10) / 10 }
