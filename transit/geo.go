package transit

import "math"

// EarthCircumference is the circumference used for great-circle distances, in km.
const EarthCircumference = 40000.0

// earthRadius is derived from EarthCircumference.
const earthRadius = EarthCircumference / (2 * math.Pi)

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
