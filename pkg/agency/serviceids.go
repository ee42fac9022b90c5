package agency

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/gtfs"
	"golang.org/x/exp/slices"
)

// ServiceIDs is the set of service ids referenced by at least one retained trip.
// A nil set places no restriction, an empty one excludes everything.
type ServiceIDs map[string]struct{}

func NewServiceIDs(ids ...string) ServiceIDs {
	serviceIDs := ServiceIDs{}
	for _, id := range ids {
		serviceIDs[id] = struct{}{}
	}

	return serviceIDs
}

func (s ServiceIDs) Contains(id string) bool {
	_, exists := s[id]
	return exists
}

func (s ServiceIDs) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// ExtractUsefulServiceIDs must run before policy.Start so that ExcludeTrip answers
// without a service id restriction.
func ExtractUsefulServiceIDs(schedule *gtfs.Schedule, policy Policy) ServiceIDs {
	excludedRoutes := map[string]bool{}
	for _, route := range schedule.Routes {
		excludedRoutes[route.ID] = policy.ExcludeRoute(route)
	}

	serviceIDs := ServiceIDs{}
	for _, trip := range schedule.Trips {
		excluded, exists := excludedRoutes[trip.RouteID]
		if !exists || excluded {
			continue
		}

		if policy.ExcludeTrip(trip) {
			continue
		}

		serviceIDs[trip.ServiceID] = struct{}{}
	}

	log.Info().Int("length", len(serviceIDs)).Msg("Extracted useful service ids")
	log.Debug().Strs("ids", serviceIDs.Sorted()).Msg("Useful service ids")

	return serviceIDs
}
