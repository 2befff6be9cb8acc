// Package geo holds distance helpers and the in-process spatial index over saved venues.
package geo

import (
	"fmt"
	"math"

	"bucket-list-client/models"
)

const (
	earthRadiusMeters   = 6371e3
	walkingMetersPerMin = 83.33 // about 5 km/h
)

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance is the haversine distance between a and b in meters.
func Distance(a, b models.Coordinates) float64 {
	phi1 := degreesToRadians(a.Latitude)
	phi2 := degreesToRadians(b.Latitude)
	dPhi := degreesToRadians(b.Latitude - a.Latitude)
	dLambda := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// FormatDistance renders meters as "125 m" below one kilometer and "2.4 km" above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// DistanceString is FormatDistance(Distance(a, b)).
func DistanceString(a, b models.Coordinates) string {
	return FormatDistance(Distance(a, b))
}

// WalkingMinutes is the rounded walking time between a and b.
func WalkingMinutes(a, b models.Coordinates) int {
	return int(math.Round(Distance(a, b) / walkingMetersPerMin))
}

func WalkingTimeString(a, b models.Coordinates) string {
	return fmt.Sprintf("%d min walk", WalkingMinutes(a, b))
}
