package geocoding

import (
	"context"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/geocoding_mocks.go -package=mocks

// Geocoder resolves between place names and coordinates.
//
// A lookup with no result returns domain.ErrPlaceNotFound. Network failures,
// unexpected status codes and undecodable responses wrap
// domain.ErrGeocoderUnavailable.
type Geocoder interface {
	Search(ctx context.Context, query string) (*valueobject.Place, error)
	Reverse(ctx context.Context, point valueobject.Point) (*valueobject.Place, error)
}
