package geodesy

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

// RandomSource yields uniformly distributed values in [0, 1).
//
// RandomPoint calls Float64 twice per draw. Implementations shared between
// goroutines must serialize access themselves.
type RandomSource interface {
	Float64() float64
}

// RandomPoint samples a point uniformly by area from the disc of radiusKm
// around center.
//
// The radial distance is radius·√u rather than radius·u: the area of a ring
// grows linearly with its radius, so drawing the radius uniformly would
// crowd samples toward the center.
func RandomPoint(center valueobject.Point, radiusKm float64, rng RandomSource) valueobject.Point {
	distance := radiusKm * math.Sqrt(rng.Float64())
	bearing := rng.Float64() * 360
	return Destination(center, bearing, distance)
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource returns a source backed by the runtime's global generator,
// which is randomly seeded and safe for concurrent use.
func DefaultSource() RandomSource {
	return globalSource{}
}

// LockedSource is a seeded generator guarded by a mutex, so one instance can
// be shared by concurrent callers and still replay the same sequence.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededSource(seed uint64) *LockedSource {
	return &LockedSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
