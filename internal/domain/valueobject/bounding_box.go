package valueobject

type BoundingBox struct {
	SouthWest Point
	NorthEast Point
}

func NewBoundingBox(sw, ne Point) BoundingBox {
	return BoundingBox{
		SouthWest: sw,
		NorthEast: ne,
	}
}

// QueryString renders the box as "sw=lon,lat&ne=lon,lat".
func (bb BoundingBox) QueryString() string {
	return "sw=" + bb.SouthWest.String() + "&ne=" + bb.NorthEast.String()
}
