package domain

import "math"

// EarthRadiusMiles is the spherical earth radius used for great-circle
// distance estimates.
const EarthRadiusMiles = 3959.0

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Haversine returns the great-circle distance in miles between c and other.
func (c Coordinate) Haversine(other Coordinate) float64 {
	dLat := radians(other.Lat - c.Lat)
	dLng := radians(other.Lng - c.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(c.Lat))*math.Cos(radians(other.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	chord := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * chord
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
