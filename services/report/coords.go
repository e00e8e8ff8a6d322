package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Browse radius bounds in kilometers. Out-of-range requests are clamped,
// not rejected.
const (
	MinBrowseRadiusKm = 0.5
	MaxBrowseRadiusKm = 10
)

// ParseLatLng parses a "lat,lng" pair as submitted by clients and returns
// the components in longitude-first storage order. Whitespace around each
// component is tolerated; anything non-numeric or out of WGS84 bounds is a
// validation error.
func ParseLatLng(raw string) (lng, lat float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: location must be \"lat,lng\"", ErrValidation)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude is not a number", ErrValidation)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude is not a number", ErrValidation)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	return lng, lat, nil
}

// ClampRadiusKm forces a requested browse radius into the supported band.
func ClampRadiusKm(radiusKm float64) float64 {
	if radiusKm < MinBrowseRadiusKm {
		return MinBrowseRadiusKm
	}
	if radiusKm > MaxBrowseRadiusKm {
		return MaxBrowseRadiusKm
	}
	return radiusKm
}
