package geodesy

import (
	"math"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

// EarthRadiusKm is the radius of the sphere the package computes on.
const EarthRadiusKm = 6373.0

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func Radians(deg float64) float64 {
	return deg * degToRad
}

func Degrees(rad float64) float64 {
	return rad * radToDeg
}

// NormalizeBearing reduces a bearing into [0, 360).
func NormalizeBearing(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return b
}

// WrapLongitude maps a longitude into [-180, 180]. The projection functions
// never call it; it is meant for output formatting.
func WrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	w := math.Mod(lon+180, 360)
	if w < 0 {
		w += 360
	}
	return w - 180
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizePoint wraps the longitude of p into [-180, 180].
func NormalizePoint(p valueobject.Point) valueobject.Point {
	return valueobject.NewPoint(WrapLongitude(p.Lon), p.Lat)
}
