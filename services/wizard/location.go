package wizard

import (
	"math"

	"shoba/models"
)

// NearestLocation maps a map-pin position (percentages of the map
// surface) to the closest catalog location by Euclidean distance.
// Locations without coordinates are skipped; ties go to the earlier
// catalog entry. Linear scan; the catalog holds a handful of entries.
func NearestLocation(x, y float64, locations []models.Location) (*models.Location, error) {
	var closest *models.Location
	minDistance := math.Inf(1)
	for i := range locations {
		c := locations[i].Coords
		if c == nil {
			continue
		}
		if d := math.Hypot(c.X-x, c.Y-y); d < minDistance {
			minDistance = d
			closest = &locations[i]
		}
	}
	if closest == nil {
		return nil, ErrNoPlaceableLocation
	}
	return closest, nil
}
