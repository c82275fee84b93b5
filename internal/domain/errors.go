package domain

import "errors"

var (
	ErrPlaceNotFound       = errors.New("place not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidLocation     = errors.New("invalid location")
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)
