package geocode

import (
	"context"
	"errors"
)

var (
	ErrNoMatch  = errors.New("geocode: address not found")
	ErrDisabled = errors.New("geocode: no endpoint configured")
)

type Conf struct {
	Endpoint  string `json:",optional"`
	UserAgent string `json:",default=KissaHub/1.0"`
	TimeoutMs int64  `json:",default=3000"`
}

// Location is a resolved street address.
type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
	City        string
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// MustNewGeocoder returns a Nominatim client, or a geocoder that always
// fails with ErrDisabled when no endpoint is configured.
func MustNewGeocoder(c Conf) Geocoder {
	if c.Endpoint == "" {
		return disabled{}
	}
	return NewNominatim(c)
}

type disabled struct{}

func (disabled) Geocode(context.Context, string) (*Location, error) {
	return nil, ErrDisabled
}
