package geodesy

import (
	"math"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

// Destination returns the point reached by travelling distanceKm from p
// along the great circle with the given initial bearing (degrees clockwise
// from north). The result longitude is not wrapped into [-180, 180].
func Destination(p valueobject.Point, bearing, distanceKm float64) valueobject.Point {
	φ1 := Radians(p.Lat)
	λ1 := Radians(p.Lon)
	θ := Radians(bearing)
	δ := distanceKm / EarthRadiusKm

	sinφ1, cosφ1 := math.Sincos(φ1)
	sinδ, cosδ := math.Sincos(δ)

	// rounding can push the argument a hair outside [-1, 1] near the poles
	sinφ2 := clamp(sinφ1*cosδ+cosφ1*sinδ*math.Cos(θ), -1, 1)
	φ2 := math.Asin(sinφ2)
	λ2 := λ1 + math.Atan2(math.Sin(θ)*sinδ*cosφ1, cosδ-sinφ1*sinφ2)

	return valueobject.NewPoint(Degrees(λ2), Degrees(φ2))
}
