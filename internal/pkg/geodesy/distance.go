package geodesy

import (
	"math"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

// Distance returns the great-circle distance between a and b in kilometres
// using the haversine formula.
func Distance(a, b valueobject.Point) float64 {
	φ1 := Radians(a.Lat)
	φ2 := Radians(b.Lat)
	Δφ := φ2 - φ1
	Δλ := Radians(b.Lon) - Radians(a.Lon)

	sinΔφ := math.Sin(Δφ / 2)
	sinΔλ := math.Sin(Δλ / 2)
	h := sinΔφ*sinΔφ + math.Cos(φ1)*math.Cos(φ2)*sinΔλ*sinΔλ
	h = clamp(h, 0, 1)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceMeters is Distance scaled to metres.
func DistanceMeters(a, b valueobject.Point) float64 {
	return Distance(a, b) * 1000
}
