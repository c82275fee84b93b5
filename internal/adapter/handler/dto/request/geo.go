package request

type LocateRequest struct {
	Place string `form:"place" binding:"required,max=512"`
}

type ReverseRequest struct {
	Lon *float64 `form:"lon" binding:"required,min=-180,max=180"`
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
}

type DistanceRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// CenterRequest names the center by place or by "lon,lat", exactly one of them.
type CenterRequest struct {
	Place    string `form:"place" binding:"required_without=Location,excluded_with=Location,max=512"`
	Location string `form:"location" binding:"required_without=Place"`
}

type RandomPointRequest struct {
	CenterRequest
	Radius *float64 `form:"radius" binding:"required,min=0"`
}

type BoundingBoxRequest struct {
	CenterRequest
	Length *float64 `form:"length" binding:"required,min=0"`
}
