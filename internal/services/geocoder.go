package services

import "context"

// Geocoder resolves coordinates into a human-readable place description. The
// platform geocoder is an external collaborator; a no-op implementation keeps
// the venue-creation path working with placeholder names.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

type noopGeocoder struct{}

func (noopGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	return "", nil
}

func NewNoopGeocoder() Geocoder {
	return noopGeocoder{}
}
