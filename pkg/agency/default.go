package agency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/travigo/agency-tools/pkg/cleanutils"
	"github.com/travigo/agency-tools/pkg/gtfs"
)

var _ Policy = (*DefaultAgencyTools)(nil)

// RouteTypeBus is the GTFS route_type used when an agency does not declare one
const RouteTypeBus = 3

// DefaultAgencyTools is the behaviour of every hook when an agency does not override it.
// Embed it and shadow the hooks that need agency specific rules.
type DefaultAgencyTools struct {
	serviceIDs ServiceIDs
}

func (d *DefaultAgencyTools) Start(serviceIDs ServiceIDs) {
	d.serviceIDs = serviceIDs
}

func (d *DefaultAgencyTools) ExcludingAll() bool {
	return d.serviceIDs != nil && len(d.serviceIDs) == 0
}

func (d *DefaultAgencyTools) excludeServiceID(serviceID string) bool {
	if d.serviceIDs == nil {
		return false
	}

	return !d.serviceIDs.Contains(serviceID)
}

func (d *DefaultAgencyTools) ExcludeCalendar(calendar gtfs.Calendar) bool {
	return d.excludeServiceID(calendar.ServiceID)
}

func (d *DefaultAgencyTools) ExcludeCalendarDate(calendarDate gtfs.CalendarDate) bool {
	return d.excludeServiceID(calendarDate.ServiceID)
}

func (d *DefaultAgencyTools) ExcludeRoute(route gtfs.Route) bool {
	return false
}

func (d *DefaultAgencyTools) ExcludeTrip(trip gtfs.Trip) bool {
	return d.excludeServiceID(trip.ServiceID)
}

func (d *DefaultAgencyTools) AgencyColour() string {
	return ""
}

func (d *DefaultAgencyTools) AgencyRouteType() int {
	return RouteTypeBus
}

// RouteID uses the numeric feed route_id so it stays matchable with GTFS real-time
func (d *DefaultAgencyTools) RouteID(route gtfs.Route) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(route.ID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("route id %q: %w", route.ID, err)
	}

	return id, nil
}

func (d *DefaultAgencyTools) RouteShortName(route gtfs.Route) (string, error) {
	return route.ShortName, nil
}

func (d *DefaultAgencyTools) RouteLongName(route gtfs.Route) (string, error) {
	return route.LongName, nil
}

func (d *DefaultAgencyTools) RouteColour(route gtfs.Route) (string, error) {
	return strings.ToUpper(route.Colour), nil
}

func (d *DefaultAgencyTools) TripHeadsign(routeID int64, trip gtfs.Trip) (TripHeadsign, error) {
	return StringHeadsign(trip.Headsign), nil
}

func (d *DefaultAgencyTools) MergeHeadsigns(headsign TripHeadsign, headsignToMerge TripHeadsign) (TripHeadsign, error) {
	if headsign == headsignToMerge {
		return headsign, nil
	}

	return TripHeadsign{}, unsupported("trip headsigns to merge", fmt.Sprintf("%s & %s", headsign, headsignToMerge))
}

func (d *DefaultAgencyTools) CleanTripHeadsign(tripHeadsign string) string {
	return cleanutils.CleanLabel(tripHeadsign)
}

func (d *DefaultAgencyTools) CleanStopName(stopName string) string {
	return cleanutils.CleanLabel(stopName)
}

func (d *DefaultAgencyTools) StopID(stop gtfs.Stop) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(stop.ID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stop id %q: %w", stop.ID, err)
	}

	return id, nil
}
