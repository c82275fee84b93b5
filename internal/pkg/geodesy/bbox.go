package geodesy

import (
	"math"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

const (
	bearingNorthEast = 45.0
	bearingSouthWest = 225.0
)

// BoundingBox returns the south-west and north-east corners of a square with
// the given edge length centred on center. The corners are projected along
// the diagonals, so the box is only approximately axis aligned and is wrong
// close to the poles or across the antimeridian.
func BoundingBox(center valueobject.Point, edgeLengthKm float64) valueobject.BoundingBox {
	halfDiagonal := edgeLengthKm * math.Sqrt2 / 2
	sw := Destination(center, bearingSouthWest, halfDiagonal)
	ne := Destination(center, bearingNorthEast, halfDiagonal)
	return valueobject.NewBoundingBox(sw, ne)
}
