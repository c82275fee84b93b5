package geo

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/marcos-nsantos/geoloc/internal/adapter/geocoding"
	"github.com/marcos-nsantos/geoloc/internal/domain"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
)

type Service struct {
	geocoder geocoding.Geocoder
	rng      geodesy.RandomSource
}

// NewService wires the geocoder and the random source used by RandomPoint.
// A nil rng falls back to geodesy.DefaultSource. The service may be shared
// between goroutines as long as rng is safe for concurrent use.
func NewService(geocoder geocoding.Geocoder, rng geodesy.RandomSource) *Service {
	if rng == nil {
		rng = geodesy.DefaultSource()
	}
	return &Service{
		geocoder: geocoder,
		rng:      rng,
	}
}

// CenterInput names a point either by place or by coordinates, never both.
type CenterInput struct {
	Place    string
	Location *valueobject.Point
}

func (s *Service) Locate(ctx context.Context, place string) (*valueobject.Place, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil, fmt.Errorf("%w: place must not be empty", domain.ErrInvalidArgument)
	}

	result, err := s.geocoder.Search(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("locating %q: %w", place, err)
	}

	return result, nil
}

func (s *Service) Reverse(ctx context.Context, point valueobject.Point) (*valueobject.Place, error) {
	if !point.IsValid() {
		return nil, fmt.Errorf("%w: %s is out of range", domain.ErrInvalidLocation, point)
	}

	result, err := s.geocoder.Reverse(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding %s: %w", point, err)
	}

	return result, nil
}

// DistanceMeters returns the great-circle distance between from and to.
func (s *Service) DistanceMeters(from, to valueobject.Point) (float64, error) {
	if !from.IsFinite() || !to.IsFinite() {
		return 0, fmt.Errorf("%w: coordinates must be finite", domain.ErrInvalidLocation)
	}

	return geodesy.DistanceMeters(from, to), nil
}

type RandomPointInput struct {
	Center   CenterInput
	RadiusKm float64
}

func (s *Service) RandomPoint(ctx context.Context, input RandomPointInput) (valueobject.Point, error) {
	if err := validateLength("radius", input.RadiusKm); err != nil {
		return valueobject.Point{}, err
	}

	center, err := s.ResolveCenter(ctx, input.Center)
	if err != nil {
		return valueobject.Point{}, err
	}

	return geodesy.RandomPoint(center, input.RadiusKm, s.rng), nil
}

type BoundingBoxInput struct {
	Center       CenterInput
	EdgeLengthKm float64
}

func (s *Service) BoundingBox(ctx context.Context, input BoundingBoxInput) (valueobject.BoundingBox, error) {
	if err := validateLength("edge length", input.EdgeLengthKm); err != nil {
		return valueobject.BoundingBox{}, err
	}

	center, err := s.ResolveCenter(ctx, input.Center)
	if err != nil {
		return valueobject.BoundingBox{}, err
	}

	return geodesy.BoundingBox(center, input.EdgeLengthKm), nil
}

// ResolveCenter returns the given location, or geocodes the given place.
func (s *Service) ResolveCenter(ctx context.Context, input CenterInput) (valueobject.Point, error) {
	place := strings.TrimSpace(input.Place)

	switch {
	case place != "" && input.Location != nil:
		return valueobject.Point{}, fmt.Errorf("%w: place and location are mutually exclusive", domain.ErrInvalidArgument)
	case input.Location != nil:
		if !input.Location.IsFinite() {
			return valueobject.Point{}, fmt.Errorf("%w: coordinates must be finite", domain.ErrInvalidLocation)
		}
		return *input.Location, nil
	case place != "":
		result, err := s.Locate(ctx, place)
		if err != nil {
			return valueobject.Point{}, err
		}
		return result.Point, nil
	default:
		return valueobject.Point{}, fmt.Errorf("%w: either place or location is required", domain.ErrInvalidArgument)
	}
}

func validateLength(name string, km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidArgument, name)
	}
	if km < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidArgument, name)
	}
	return nil
}
