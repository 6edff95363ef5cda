package branch

import "time"

// Branch is a physical work location. Latitude/longitude/radius define
// the circular geofence attendance events must fall inside.
type Branch struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
