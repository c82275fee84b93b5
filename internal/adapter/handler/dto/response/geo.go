package response

import (
	"github.com/marcos-nsantos/geoloc/internal/adapter/presenter"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
)

type PointResponse struct {
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
	Text string  `json:"text"`
}

type PlaceResponse struct {
	DisplayName string        `json:"display_name"`
	Location    PointResponse `json:"location"`
}

type DistanceResponse struct {
	Meters float64 `json:"meters"`
	Text   string  `json:"text"`
}

type BoundingBoxResponse struct {
	SouthWest PointResponse `json:"sw"`
	NorthEast PointResponse `json:"ne"`
	Query     string        `json:"query"`
}

func PointFromValue(p valueobject.Point) PointResponse {
	n := geodesy.NormalizePoint(p)
	return PointResponse{
		Lon:  n.Lon,
		Lat:  n.Lat,
		Text: n.String(),
	}
}

func PlaceFromValue(p *valueobject.Place) PlaceResponse {
	return PlaceResponse{
		DisplayName: p.DisplayName,
		Location:    PointFromValue(p.Point),
	}
}

func DistanceFromMeters(m float64) DistanceResponse {
	return DistanceResponse{
		Meters: presenter.RoundMeters(m),
		Text:   presenter.Meters(m),
	}
}

func BoundingBoxFromValue(bb valueobject.BoundingBox) BoundingBoxResponse {
	return BoundingBoxResponse{
		SouthWest: PointFromValue(bb.SouthWest),
		NorthEast: PointFromValue(bb.NorthEast),
		Query:     presenter.BoundingBox(bb),
	}
}
