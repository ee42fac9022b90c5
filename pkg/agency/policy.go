package agency

import "github.com/travigo/agency-tools/pkg/gtfs"

// Policy is the set of hooks an agency supplies to the generator. Exclude hooks return
// true to drop a row. Any normalization hook may return an error wrapping
// ErrUnsupportedEntity, which must abort the run.
type Policy interface {
	Start(serviceIDs ServiceIDs)
	ExcludingAll() bool

	ExcludeCalendar(calendar gtfs.Calendar) bool
	ExcludeCalendarDate(calendarDate gtfs.CalendarDate) bool
	ExcludeRoute(route gtfs.Route) bool
	ExcludeTrip(trip gtfs.Trip) bool

	AgencyColour() string
	AgencyRouteType() int

	RouteID(route gtfs.Route) (int64, error)
	RouteShortName(route gtfs.Route) (string, error)
	RouteLongName(route gtfs.Route) (string, error)
	RouteColour(route gtfs.Route) (string, error)

	TripHeadsign(routeID int64, trip gtfs.Trip) (TripHeadsign, error)
	MergeHeadsigns(headsign TripHeadsign, headsignToMerge TripHeadsign) (TripHeadsign, error)
	CleanTripHeadsign(tripHeadsign string) string

	CleanStopName(stopName string) string
	StopID(stop gtfs.Stop) (int64, error)
}
