package handler

import (
	"context"

	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type GeoService interface {
	Locate(ctx context.Context, place string) (*valueobject.Place, error)
	Reverse(ctx context.Context, point valueobject.Point) (*valueobject.Place, error)
	DistanceMeters(from, to valueobject.Point) (float64, error)
	RandomPoint(ctx context.Context, input geo.RandomPointInput) (valueobject.Point, error)
	BoundingBox(ctx context.Context, input geo.BoundingBoxInput) (valueobject.BoundingBox, error)
}
