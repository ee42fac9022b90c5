// Package seabus is the TransLink (Vancouver) SeaBus ferry policy: the one ferry route
// kept out of the TransLink GTFS feed.
package seabus

import (
	"github.com/travigo/agency-tools/pkg/agency"
)

const PresetName = "ca-vancouver-translink-seabus"

const (
	ShortName = "SB"
	LongName  = "SeaBus"

	AgencyColour = "0761A5" // TransLink blue
	RouteColour  = "82695E"

	// FeedRouteID is the SeaBus route_id in the TransLink feed
	FeedRouteID int64 = 6771
	// LegacyRouteID was assigned to the route before the feed route_id was kept
	LegacyRouteID int64 = 998

	RouteTypeFerry = 4
)

// Config returns the current SeaBus rules
func Config() agency.Config {
	return agency.Config{
		IncludeRoutes: []string{"998", "SeaBus", "SEABUS"},
		RouteMatch:    agency.RouteMatchFold,
		MatchLongName: true,

		RouteIDAssignment: agency.RouteIDDefault,

		ShortName:    ShortName,
		LongName:     LongName,
		AgencyColour: AgencyColour,
		RouteColour:  RouteColour,
		RouteType:    RouteTypeFerry,

		DirectionRouteID: FeedRouteID,
		Directions: map[int]agency.Direction{
			0: agency.DirectionNorth,
			1: agency.DirectionSouth,
		},

		RouteKeywords: []string{"seabus"},

		StopIDAssignment: agency.StopIDDefault,
		StopIDOffset:     agency.DefaultStopIDOffset,
	}
}

// LegacyConfig returns the earlier rules: exact short name match, a fixed route id and
// stop codes as stop ids
func LegacyConfig() agency.Config {
	config := Config()
	config.IncludeRoutes = []string{"998", "SeaBus"}
	config.RouteMatch = agency.RouteMatchExact
	config.MatchLongName = false
	config.RouteIDAssignment = agency.RouteIDFixed
	config.FixedRouteID = LegacyRouteID
	config.DirectionRouteID = LegacyRouteID
	config.StopIDAssignment = agency.StopIDStopCode

	return config
}

func New() (*agency.SingleRoutePolicy, error) {
	return agency.NewSingleRoutePolicy(Config())
}
