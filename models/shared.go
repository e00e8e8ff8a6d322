package models

// GeoPoint is a GeoJSON point. Coordinates are always stored as
// [longitude, latitude], matching the order mongo's 2dsphere index expects.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lng returns the longitude component.
func (p GeoPoint) Lng() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Lat returns the latitude component.
func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[1]
}

// IsUnset reports whether the point is the [0,0] sentinel used for
// "no location set". Consumers must exclude such points from distance
// filters.
func (p GeoPoint) IsUnset() bool {
	if len(p.Coordinates) != 2 {
		return true
	}
	return p.Coordinates[0] == 0 && p.Coordinates[1] == 0
}

// Valid reports whether the pair is inside WGS84 bounds.
func (p GeoPoint) Valid() bool {
	if len(p.Coordinates) != 2 {
		return false
	}
	lng, lat := p.Coordinates[0], p.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}
