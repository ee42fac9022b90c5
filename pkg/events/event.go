package events

import (
	"time"
)

const DatasetGeneratedRoutingKey = "dataset.event.generated"

type DatasetGenerated struct {
	DatasetID   string
	Destination string
	SnapshotID  string `json:",omitempty"`

	Routes        int
	Trips         int
	Stops         int
	TripStops     int
	Calendars     int
	CalendarDates int

	GeneratedAt time.Time
}
