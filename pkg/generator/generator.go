package generator

import (
	"cmp"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/agency"
	"github.com/travigo/agency-tools/pkg/gtfs"
	"github.com/travigo/agency-tools/pkg/transforms"
	"golang.org/x/exp/slices"
)

type headsignKey struct {
	RouteID     int64
	DirectionID string
}

type tripStopKey struct {
	TripID       string
	StopID       int64
	StopSequence int
}

// Generate runs the policy over the schedule. Any policy error aborts the run.
func Generate(schedule *gtfs.Schedule, policy agency.Policy) (*Output, error) {
	// Clear any service id filter left over from an earlier run
	policy.Start(nil)

	serviceIDs := agency.ExtractUsefulServiceIDs(schedule, policy)
	policy.Start(serviceIDs)

	output := &Output{
		Routes:        []*MRoute{},
		Trips:         []*MTrip{},
		Stops:         []*MStop{},
		TripStops:     []*MTripStop{},
		Calendars:     []*gtfs.Calendar{},
		CalendarDates: []*gtfs.CalendarDate{},
	}

	if policy.ExcludingAll() {
		output.Agency = generateAgency(schedule, policy, nil)
		log.Warn().Msg("No useful service ids, excluding everything")
		return output, nil
	}

	if err := generateCalendars(schedule, policy, output); err != nil {
		return nil, err
	}

	feedRouteIDs, err := generateRoutes(schedule, policy, output)
	if err != nil {
		return nil, err
	}

	output.Agency = generateAgency(schedule, policy, output.Routes)

	if err := generateTrips(schedule, policy, feedRouteIDs, output); err != nil {
		return nil, err
	}

	if err := generateStops(schedule, policy, output); err != nil {
		return nil, err
	}

	log.Info().
		Int("routes", len(output.Routes)).
		Int("trips", len(output.Trips)).
		Int("stops", len(output.Stops)).
		Int("tripstops", len(output.TripStops)).
		Int("calendars", len(output.Calendars)).
		Int("calendardates", len(output.CalendarDates)).
		Msg("Generated dataset")

	return output, nil
}

// copyRecord copies the shared fields of a feed record into a new output record
func copyRecord[T any](from any) (*T, error) {
	record := new(T)
	if err := copier.Copy(record, from); err != nil {
		return nil, err
	}

	return record, nil
}

// Transform applies dataset transforms to the generated records
func (o *Output) Transform(definitions transforms.Transforms) {
	if len(definitions) == 0 {
		return
	}

	definitions.Transform(o.Agency)
	definitions.Transform(o.Routes)
	definitions.Transform(o.Trips)
	definitions.Transform(o.Stops)
}

func generateAgency(schedule *gtfs.Schedule, policy agency.Policy, routes []*MRoute) *MAgency {
	magency := &MAgency{
		Colour:    policy.AgencyColour(),
		RouteType: policy.AgencyRouteType(),
	}

	if len(schedule.Agencies) == 0 {
		return magency
	}

	feedAgency := schedule.Agencies[0]
	if len(routes) > 0 {
		if route, exists := schedule.RouteByID(routes[0].SourceID); exists {
			for _, candidate := range schedule.Agencies {
				if candidate.ID == route.AgencyID {
					feedAgency = candidate
					break
				}
			}
		}
	}

	magency.ID = feedAgency.ID
	magency.Name = feedAgency.Name
	magency.URL = feedAgency.URL
	magency.Timezone = feedAgency.Timezone

	return magency
}

func generateCalendars(schedule *gtfs.Schedule, policy agency.Policy, output *Output) error {
	for _, calendar := range schedule.Calendars {
		if policy.ExcludeCalendar(calendar) {
			continue
		}

		outputCalendar, err := copyRecord[gtfs.Calendar](&calendar)
		if err != nil {
			return fmt.Errorf("copy calendar %s: %w", calendar.ServiceID, err)
		}
		output.Calendars = append(output.Calendars, outputCalendar)
	}

	for _, calendarDate := range schedule.CalendarDates {
		if policy.ExcludeCalendarDate(calendarDate) {
			continue
		}

		outputCalendarDate, err := copyRecord[gtfs.CalendarDate](&calendarDate)
		if err != nil {
			return fmt.Errorf("copy calendar date %s %s: %w", calendarDate.ServiceID, calendarDate.Date, err)
		}
		output.CalendarDates = append(output.CalendarDates, outputCalendarDate)
	}

	slices.SortStableFunc(output.Calendars, func(a, b *gtfs.Calendar) int {
		return cmp.Compare(a.ServiceID, b.ServiceID)
	})
	slices.SortStableFunc(output.CalendarDates, func(a, b *gtfs.CalendarDate) int {
		if a.ServiceID != b.ServiceID {
			return cmp.Compare(a.ServiceID, b.ServiceID)
		}
		return cmp.Compare(a.Date, b.Date)
	})

	return nil
}

// generateRoutes returns the output route id for every kept feed route_id
func generateRoutes(schedule *gtfs.Schedule, policy agency.Policy, output *Output) (map[string]int64, error) {
	feedRouteIDs := map[string]int64{}
	generated := map[int64]bool{}

	for _, route := range schedule.Routes {
		if policy.ExcludeRoute(route) {
			continue
		}

		routeID, err := policy.RouteID(route)
		if err != nil {
			return nil, fmt.Errorf("route %s id: %w", route.ID, err)
		}
		feedRouteIDs[route.ID] = routeID

		if generated[routeID] {
			log.Debug().Str("route", route.ID).Int64("id", routeID).Msg("Route already generated")
			continue
		}

		mroute, err := copyRecord[MRoute](&route)
		if err != nil {
			return nil, fmt.Errorf("copy route %s: %w", route.ID, err)
		}
		mroute.ID = routeID
		mroute.SourceID = route.ID
		mroute.Type = policy.AgencyRouteType()

		if mroute.ShortName, err = policy.RouteShortName(route); err != nil {
			return nil, fmt.Errorf("route %s short name: %w", route.ID, err)
		}
		if mroute.LongName, err = policy.RouteLongName(route); err != nil {
			return nil, fmt.Errorf("route %s long name: %w", route.ID, err)
		}
		if mroute.Colour, err = policy.RouteColour(route); err != nil {
			return nil, fmt.Errorf("route %s colour: %w", route.ID, err)
		}

		generated[routeID] = true
		output.Routes = append(output.Routes, mroute)
	}

	slices.SortStableFunc(output.Routes, func(a, b *MRoute) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return feedRouteIDs, nil
}

func generateTrips(schedule *gtfs.Schedule, policy agency.Policy, feedRouteIDs map[string]int64, output *Output) error {
	headsigns := map[headsignKey]agency.TripHeadsign{}

	for _, trip := range schedule.Trips {
		routeID, exists := feedRouteIDs[trip.RouteID]
		if !exists || policy.ExcludeTrip(trip) {
			continue
		}

		headsign, err := policy.TripHeadsign(routeID, trip)
		if err != nil {
			return fmt.Errorf("trip %s headsign: %w", trip.ID, err)
		}
		if headsign.Type == agency.HeadsignTypeString {
			headsign.Value = policy.CleanTripHeadsign(headsign.Value)
		}

		key := headsignKey{RouteID: routeID, DirectionID: trip.DirectionID}
		if existing, exists := headsigns[key]; exists && existing != headsign {
			merged, err := policy.MergeHeadsigns(existing, headsign)
			if err != nil {
				return fmt.Errorf("trip %s headsign: %w", trip.ID, err)
			}
			headsign = merged
		}
		headsigns[key] = headsign

		mtrip, err := copyRecord[MTrip](&trip)
		if err != nil {
			return fmt.Errorf("copy trip %s: %w", trip.ID, err)
		}
		mtrip.RouteID = routeID

		output.Trips = append(output.Trips, mtrip)
	}

	for _, mtrip := range output.Trips {
		mtrip.SetHeadsign(headsigns[headsignKey{RouteID: mtrip.RouteID, DirectionID: mtrip.DirectionID}])
	}

	slices.SortStableFunc(output.Trips, func(a, b *MTrip) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return nil
}

// generateStops keeps the stops used by kept trips and builds the trip stop list
func generateStops(schedule *gtfs.Schedule, policy agency.Policy, output *Output) error {
	keptTrips := map[string]bool{}
	for _, mtrip := range output.Trips {
		keptTrips[mtrip.ID] = true
	}

	usedStops := map[string]bool{}
	for _, stopTime := range schedule.StopTimes {
		if keptTrips[stopTime.TripID] {
			usedStops[stopTime.StopID] = true
		}
	}

	stopIDs := map[string]int64{}
	generated := map[int64]string{}

	for _, stop := range schedule.Stops {
		if !usedStops[stop.ID] {
			continue
		}

		stopID, err := policy.StopID(stop)
		if err != nil {
			return fmt.Errorf("stop %s id: %w", stop.ID, err)
		}

		if existing, exists := generated[stopID]; exists {
			return fmt.Errorf("stops %s and %s both map to stop id %d", existing, stop.ID, stopID)
		}
		generated[stopID] = stop.ID
		stopIDs[stop.ID] = stopID

		mstop, err := copyRecord[MStop](&stop)
		if err != nil {
			return fmt.Errorf("copy stop %s: %w", stop.ID, err)
		}
		mstop.ID = stopID
		mstop.SourceID = stop.ID
		mstop.Name = policy.CleanStopName(stop.Name)

		output.Stops = append(output.Stops, mstop)
	}

	slices.SortStableFunc(output.Stops, func(a, b *MStop) int {
		return cmp.Compare(a.ID, b.ID)
	})

	seenTripStops := map[tripStopKey]bool{}
	for _, stopTime := range schedule.StopTimes {
		if !keptTrips[stopTime.TripID] {
			continue
		}

		stopID, exists := stopIDs[stopTime.StopID]
		if !exists {
			return fmt.Errorf("trip %s references unknown stop %s", stopTime.TripID, stopTime.StopID)
		}

		key := tripStopKey{TripID: stopTime.TripID, StopID: stopID, StopSequence: stopTime.StopSequence}
		if seenTripStops[key] {
			continue
		}
		seenTripStops[key] = true

		mtripStop, err := copyRecord[MTripStop](&stopTime)
		if err != nil {
			return fmt.Errorf("copy stop time %s/%d: %w", stopTime.TripID, stopTime.StopSequence, err)
		}
		mtripStop.StopID = stopID

		output.TripStops = append(output.TripStops, mtripStop)
	}

	slices.SortStableFunc(output.TripStops, func(a, b *MTripStop) int {
		if a.TripID != b.TripID {
			return cmp.Compare(a.TripID, b.TripID)
		}
		if a.StopSequence != b.StopSequence {
			return cmp.Compare(a.StopSequence, b.StopSequence)
		}
		return cmp.Compare(a.StopID, b.StopID)
	})

	return nil
}
