package utils

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371

// CalculateDistance returns the great-circle distance in kilometers between
// two lat/lng pairs given in degrees, using the haversine formula.
func CalculateDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceKm is CalculateDistance rounded to the nearest whole kilometer.
func DistanceKm(lat1, lng1, lat2, lng2 float64) int {
	return int(math.Round(CalculateDistance(lat1, lng1, lat2, lng2)))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
