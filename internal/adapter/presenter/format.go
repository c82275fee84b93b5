// Package presenter renders core results in the textual forms shared by the
// command line and the HTTP API. Longitudes are wrapped into [-180, 180]
// here and nowhere else.
package presenter

import (
	"math"
	"strconv"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
)

// Point renders "lon,lat".
func Point(p valueobject.Point) string {
	return geodesy.NormalizePoint(p).String()
}

// Meters renders a distance rounded to the nearest metre.
func Meters(m float64) string {
	return strconv.FormatFloat(RoundMeters(m), 'f', 0, 64)
}

func RoundMeters(m float64) float64 {
	return math.Round(m)
}

// BoundingBox renders "sw=lon,lat&ne=lon,lat".
func BoundingBox(bb valueobject.BoundingBox) string {
	return NormalizeBoundingBox(bb).QueryString()
}

func NormalizeBoundingBox(bb valueobject.BoundingBox) valueobject.BoundingBox {
	return valueobject.NewBoundingBox(
		geodesy.NormalizePoint(bb.SouthWest),
		geodesy.NormalizePoint(bb.NorthEast),
	)
}
