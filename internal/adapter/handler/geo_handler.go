package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geoloc/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/geoloc/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/pkg/httputil"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

type GeoHandler struct {
	geoSvc GeoService
}

func NewGeoHandler(geoSvc GeoService) *GeoHandler {
	return &GeoHandler{geoSvc: geoSvc}
}

// Locate godoc
//
//	@Summary	Resolve a place name to coordinates
//	@Tags		geo
//	@Produce	json
//	@Param		place	query		string	true	"Free-form place name"
//	@Success	200		{object}	response.PlaceResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Failure	502		{object}	httputil.ErrorResponse
//	@Router		/loc [get]
func (h *GeoHandler) Locate(c *gin.Context) {
	var req request.LocateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	place, err := h.geoSvc.Locate(c.Request.Context(), req.Place)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromValue(place))
}

// Reverse godoc
//
//	@Summary	Resolve coordinates to a place name
//	@Tags		geo
//	@Produce	json
//	@Param		lon	query		number	true	"Longitude"
//	@Param		lat	query		number	true	"Latitude"
//	@Success	200	{object}	response.PlaceResponse
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/rev [get]
func (h *GeoHandler) Reverse(c *gin.Context) {
	var req request.ReverseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	place, err := h.geoSvc.Reverse(c.Request.Context(), valueobject.NewPoint(*req.Lon, *req.Lat))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromValue(place))
}

// Distance godoc
//
//	@Summary	Great-circle distance between two points, in metres
//	@Tags		geo
//	@Produce	json
//	@Param		from	query		string	true	"Start point as lon,lat"
//	@Param		to		query		string	true	"End point as lon,lat"
//	@Success	200		{object}	response.DistanceResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Router		/dis [get]
func (h *GeoHandler) Distance(c *gin.Context) {
	var req request.DistanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	from, err := valueobject.ParsePoint(req.From)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	to, err := valueobject.ParsePoint(req.To)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	meters, err := h.geoSvc.DistanceMeters(from, to)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.DistanceFromMeters(meters))
}

// RandomPoint godoc
//
//	@Summary	Random point within a radius of a place or location
//	@Tags		geo
//	@Produce	json
//	@Param		place		query		string	false	"Place name, exclusive with location"
//	@Param		location	query		string	false	"Center as lon,lat, exclusive with place"
//	@Param		radius		query		number	true	"Radius in kilometres"
//	@Success	200			{object}	response.PointResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Failure	502			{object}	httputil.ErrorResponse
//	@Router		/rnd [get]
func (h *GeoHandler) RandomPoint(c *gin.Context) {
	var req request.RandomPointRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	center, err := centerInput(req.CenterRequest)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	p, err := h.geoSvc.RandomPoint(c.Request.Context(), geo.RandomPointInput{
		Center:   center,
		RadiusKm: *req.Radius,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PointFromValue(p))
}

// BoundingBox godoc
//
//	@Summary	Square bounding box centred on a place or location
//	@Tags		geo
//	@Produce	json
//	@Param		place		query		string	false	"Place name, exclusive with location"
//	@Param		location	query		string	false	"Center as lon,lat, exclusive with place"
//	@Param		length		query		number	true	"Edge length in kilometres"
//	@Success	200			{object}	response.BoundingBoxResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Failure	502			{object}	httputil.ErrorResponse
//	@Router		/bbox [get]
func (h *GeoHandler) BoundingBox(c *gin.Context) {
	var req request.BoundingBoxRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	center, err := centerInput(req.CenterRequest)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	bb, err := h.geoSvc.BoundingBox(c.Request.Context(), geo.BoundingBoxInput{
		Center:       center,
		EdgeLengthKm: *req.Length,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.BoundingBoxFromValue(bb))
}

func centerInput(req request.CenterRequest) (geo.CenterInput, error) {
	if req.Location == "" {
		return geo.CenterInput{Place: req.Place}, nil
	}

	p, err := valueobject.ParsePoint(req.Location)
	if err != nil {
		return geo.CenterInput{}, err
	}
	return geo.CenterInput{Location: &p}, nil
}
