package helpers

import "math"

// Region is a centered map viewport.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

type Coordinate struct {
	Lat float64
	Lng float64
}

// minRegionDelta keeps the viewport from collapsing to a zero span when all
// markers share one point.
const minRegionDelta = 0.01

// regionPadding widens the bounding box so markers sit inside the viewport
// rather than on its edge.
const regionPadding = 1.6

// FallbackRegion is the viewport shown when no marker has usable coordinates.
func FallbackRegion() Region {
	return Region{
		Latitude:       -23.55052,
		Longitude:      -46.633308,
		LatitudeDelta:  0.1,
		LongitudeDelta: 0.1,
	}
}

// RegionFor computes the viewport that fits every coordinate: centered on the
// bounding-box midpoint with padded, floor-limited deltas.
func RegionFor(coords []Coordinate) Region {
	if len(coords) == 0 {
		return FallbackRegion()
	}

	minLat, maxLat := coords[0].Lat, coords[0].Lat
	minLng, maxLng := coords[0].Lng, coords[0].Lng
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
	}

	return Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLng + maxLng) / 2,
		LatitudeDelta:  math.Max(minRegionDelta, (maxLat-minLat)*regionPadding),
		LongitudeDelta: math.Max(minRegionDelta, (maxLng-minLng)*regionPadding),
	}
}
