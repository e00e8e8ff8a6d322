package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLngReturnsLngLatOrder(t *testing.T) {
	// Clients submit "lat,lng"; storage order is longitude first.
	lng, lat, err := ParseLatLng("-1.2921,36.8219")
	require.NoError(t, err)
	assert.Equal(t, 36.8219, lng)
	assert.Equal(t, -1.2921, lat)
}

func TestParseLatLngTrimsWhitespace(t *testing.T) {
	lng, lat, err := ParseLatLng(" 51.5074 , -0.1278 ")
	require.NoError(t, err)
	assert.Equal(t, -0.1278, lng)
	assert.Equal(t, 51.5074, lat)
}

func TestParseLatLngRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"12.5",
		"12.5,13.5,14.5",
		"abc,36.8",
		"-1.29,xyz",
		",",
	}
	for _, raw := range cases {
		_, _, err := ParseLatLng(raw)
		require.Error(t, err, "input %q", raw)
		assert.True(t, errors.Is(err, ErrValidation), "input %q should be a validation error", raw)
	}
}

func TestParseLatLngRejectsOutOfRange(t *testing.T) {
	_, _, err := ParseLatLng("91,10")
	assert.True(t, errors.Is(err, ErrValidation))

	_, _, err = ParseLatLng("10,181")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestClampRadiusKm(t *testing.T) {
	assert.Equal(t, 0.5, ClampRadiusKm(0.1))
	assert.Equal(t, 0.5, ClampRadiusKm(-3))
	assert.Equal(t, 10.0, ClampRadiusKm(250))
	assert.Equal(t, 2.0, ClampRadiusKm(2))
	assert.Equal(t, 0.5, ClampRadiusKm(0.5))
	assert.Equal(t, 10.0, ClampRadiusKm(10))
}
