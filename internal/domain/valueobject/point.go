package valueobject

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/geoloc/internal/domain"
)

// Point is a geographic coordinate in degrees. Longitude comes first, the
// way the command line and the output format write it.
type Point struct {
	Lon float64
	Lat float64
}

func NewPoint(lon, lat float64) Point {
	return Point{Lon: lon, Lat: lat}
}

// ParsePoint parses a "lon,lat" pair.
func ParsePoint(s string) (Point, error) {
	lonStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: expected lon,lat, got %q", domain.ErrInvalidLocation, s)
	}

	lon, err := parseCoordinate(lonStr)
	if err != nil {
		return Point{}, fmt.Errorf("%w: could not parse longitude %q", domain.ErrInvalidLocation, lonStr)
	}
	lat, err := parseCoordinate(latStr)
	if err != nil {
		return Point{}, fmt.Errorf("%w: could not parse latitude %q", domain.ErrInvalidLocation, latStr)
	}

	return NewPoint(lon, lat), nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0) &&
		!math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0)
}

func (p Point) IsValid() bool {
	return p.IsFinite() &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lon >= -180 && p.Lon <= 180
}

// String formats the point as "lon,lat" with the shortest representation
// that round-trips.
func (p Point) String() string {
	return FormatCoordinate(p.Lon) + "," + FormatCoordinate(p.Lat)
}

func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
