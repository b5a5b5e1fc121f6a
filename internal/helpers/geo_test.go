package helpers

import (
	"math"
	"testing"
)

func TestRegionForEmptyUsesFallback(t *testing.T) {
	got := RegionFor(nil)
	want := FallbackRegion()
	if got != want {
		t.Errorf("Expected fallback region %+v, got %+v", want, got)
	}
}

func TestRegionForSinglePoint(t *testing.T) {
	got := RegionFor([]Coordinate{{Lat: 10, Lng: 20}})
	if got.Latitude != 10 || got.Longitude != 20 {
		t.Errorf("Region should center on the point, got %+v", got)
	}
	if got.LatitudeDelta != minRegionDelta || got.LongitudeDelta != minRegionDelta {
		t.Errorf("A single point should use the minimum delta, got %+v", got)
	}
}

func TestRegionForContainsAllPoints(t *testing.T) {
	coords := []Coordinate{
		{Lat: -23.5, Lng: -46.6},
		{Lat: -23.7, Lng: -46.4},
		{Lat: -23.6, Lng: -46.5},
	}
	got := RegionFor(coords)

	if math.Abs(got.Latitude-(-23.6)) > 1e-9 {
		t.Errorf("Expected latitude midpoint -23.6, got %f", got.Latitude)
	}
	if math.Abs(got.Longitude-(-46.5)) > 1e-9 {
		t.Errorf("Expected longitude midpoint -46.5, got %f", got.Longitude)
	}

	for _, c := range coords {
		if math.Abs(c.Lat-got.Latitude) > got.LatitudeDelta/2+1e-9 {
			t.Errorf("Point %+v falls outside the latitude span", c)
		}
		if math.Abs(c.Lng-got.Longitude) > got.LongitudeDelta/2+1e-9 {
			t.Errorf("Point %+v falls outside the longitude span", c)
		}
	}
}

func TestRegionForPadsBoundingBox(t *testing.T) {
	coords := []Coordinate{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 2}}
	got := RegionFor(coords)
	if math.Abs(got.LatitudeDelta-1.6) > 1e-9 {
		t.Errorf("Expected padded latitude delta 1.6, got %f", got.LatitudeDelta)
	}
	if math.Abs(got.LongitudeDelta-3.2) > 1e-9 {
		t.Errorf("Expected padded longitude delta 3.2, got %f", got.LongitudeDelta)
	}
}
