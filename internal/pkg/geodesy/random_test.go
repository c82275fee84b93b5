package geodesy_test

import (
	"sync"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
)

// sequenceSource replays fixed values so the projection can be checked by hand.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func s2Point(p valueobject.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
}

func TestRandomPoint(t *testing.T) {
	t.Run("stays within the given radius", func(t *testing.T) {
		rng := geodesy.NewSeededSource(1)
		radius := 9.9

		for range 5000 {
			p := geodesy.RandomPoint(stuttgart, radius, rng)
			assert.LessOrEqual(t, geodesy.Distance(stuttgart, p), radius+eps)
		}
	})

	t.Run("stays inside a 10 km disc polygon", func(t *testing.T) {
		rng := geodesy.NewSeededSource(2)
		disc := s2.RegularLoop(s2Point(stuttgart), s1.Angle(10/geodesy.EarthRadiusKm), 360)

		for range 1000 {
			p := geodesy.RandomPoint(stuttgart, 9.9, rng)
			assert.True(t, disc.ContainsPoint(s2Point(p)), "point %s outside disc", p)
		}
	})

	t.Run("is uniform by area", func(t *testing.T) {
		rng := geodesy.NewSeededSource(3)
		radius := 50.0
		draws := 20000

		inner := 0
		for range draws {
			if geodesy.Distance(stuttgart, geodesy.RandomPoint(stuttgart, radius, rng)) <= radius/2 {
				inner++
			}
		}

		// sd of the fraction is ~0.003 here; a radius drawn uniformly would give 0.5
		fraction := float64(inner) / float64(draws)
		assert.InDelta(t, 0.25, fraction, 0.02)
	})

	t.Run("bearings cover every quadrant evenly", func(t *testing.T) {
		rng := geodesy.NewSeededSource(4)
		draws := 20000

		var north, east int
		for range draws {
			p := geodesy.RandomPoint(stuttgart, 20, rng)
			if p.Lat > stuttgart.Lat {
				north++
			}
			if p.Lon > stuttgart.Lon {
				east++
			}
		}

		assert.InDelta(t, 0.5, float64(north)/float64(draws), 0.02)
		assert.InDelta(t, 0.5, float64(east)/float64(draws), 0.02)
	})

	t.Run("maps the unit draw through the square root", func(t *testing.T) {
		rng := &sequenceSource{values: []float64{0.25, 0}}

		p := geodesy.RandomPoint(stuttgart, 8, rng)

		assert.InDelta(t, 4.0, geodesy.Distance(stuttgart, p), 1e-9)
		assert.InDelta(t, stuttgart.Lon, p.Lon, 1e-12)
		assert.Greater(t, p.Lat, stuttgart.Lat)
	})

	t.Run("uses the second draw as the bearing", func(t *testing.T) {
		rng := &sequenceSource{values: []float64{1, 0.25}}

		p := geodesy.RandomPoint(stuttgart, 8, rng)

		assertPointInDelta(t, geodesy.Destination(stuttgart, 90, 8), p, eps)
	})

	t.Run("zero radius returns the center", func(t *testing.T) {
		rng := geodesy.NewSeededSource(5)

		assertPointInDelta(t, stuttgart, geodesy.RandomPoint(stuttgart, 0, rng), eps)
	})

	t.Run("same seed replays the same points", func(t *testing.T) {
		a := geodesy.NewSeededSource(42)
		b := geodesy.NewSeededSource(42)

		for range 10 {
			assert.Equal(t, geodesy.RandomPoint(stuttgart, 5, a), geodesy.RandomPoint(stuttgart, 5, b))
		}
	})

	t.Run("default source works", func(t *testing.T) {
		p := geodesy.RandomPoint(stuttgart, 3, geodesy.DefaultSource())

		assert.LessOrEqual(t, geodesy.Distance(stuttgart, p), 3+eps)
	})
}

func TestSeededSource_ConcurrentUse(t *testing.T) {
	rng := geodesy.NewSeededSource(7)
	radius := 2.5

	var wg sync.WaitGroup
	results := make(chan valueobject.Point, 8*200)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				results <- geodesy.RandomPoint(stuttgart, radius, rng)
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for p := range results {
		require.LessOrEqual(t, geodesy.Distance(stuttgart, p), radius+eps)
		count++
	}
	assert.Equal(t, 1600, count)
}

func TestSeededSource_Range(t *testing.T) {
	rng := geodesy.NewSeededSource(9)

	for range 1000 {
		v := rng.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
