package attendance

import "time"

// Kind distinguishes the two raw event types an employee can submit.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindLeave      Kind = "leave"
)

// Event is a raw clock event. Events are append-only: they are created
// by the recorders and never mutated. The recorders enforce that at most
// one event of each kind exists per shift occurrence.
type Event struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Latitude   float64
	Longitude  float64
	Kind       Kind
	CreatedAt  time.Time
}
