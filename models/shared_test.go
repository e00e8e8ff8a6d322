package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPointCoordinateOrder(t *testing.T) {
	p := NewGeoPoint(36.8219, -1.2921)
	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, 36.8219, p.Lng())
	assert.Equal(t, -1.2921, p.Lat())
	assert.Equal(t, []float64{36.8219, -1.2921}, p.Coordinates)
}

func TestGeoPointSentinel(t *testing.T) {
	assert.True(t, NewGeoPoint(0, 0).IsUnset())
	assert.False(t, NewGeoPoint(36.8, -1.3).IsUnset())
	assert.True(t, GeoPoint{}.IsUnset())
	// A zero component on its own is a legitimate coordinate.
	assert.False(t, NewGeoPoint(0, 51.5).IsUnset())
}

func TestGeoPointValid(t *testing.T) {
	assert.True(t, NewGeoPoint(180, 90).Valid())
	assert.True(t, NewGeoPoint(-180, -90).Valid())
	assert.False(t, NewGeoPoint(181, 0).Valid())
	assert.False(t, NewGeoPoint(0, 91).Valid())
	assert.False(t, GeoPoint{}.Valid())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusOnProgress, StatusCompleted, StatusRejected} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
