package valueobject

// Place is a geocoder hit.
type Place struct {
	Point       Point
	DisplayName string
}

func NewPlace(point Point, displayName string) *Place {
	return &Place{
		Point:       point,
		DisplayName: displayName,
	}
}
