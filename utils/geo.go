package utils

import (
	"fmt"
	"math"

	"tripplanner/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// ValidateLocation fails with ErrInvalidCoordinate when lat/lon are not
// valid degrees.
func ValidateLocation(p models.Location) error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return models.NewPlanError(models.CodeInvalidCoordinate, fmt.Sprintf("latitude %v out of range [-90,90]", p.Latitude))
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return models.NewPlanError(models.CodeInvalidCoordinate, fmt.Sprintf("longitude %v out of range [-180,180]", p.Longitude))
	}
	return nil
}

// DistanceKm returns the haversine distance between a and b in kilometres.
func DistanceKm(a, b models.Location) (float64, error) {
	if err := ValidateLocation(a); err != nil {
		return 0, err
	}
	if err := ValidateLocation(b); err != nil {
		return 0, err
	}
	return haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude), nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
