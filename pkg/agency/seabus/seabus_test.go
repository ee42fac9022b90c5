package seabus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/agency-tools/pkg/agency"
	"github.com/travigo/agency-tools/pkg/gtfs"
)

var seabusRoute = gtfs.Route{ID: "6771", ShortName: "998", LongName: "SeaBus", Type: 4}
var busRoute = gtfs.Route{ID: "6612", ShortName: "99", LongName: "Commercial-Broadway/UBC (B-Line)", Type: 3}

func newPolicy(t *testing.T) *agency.SingleRoutePolicy {
	policy, err := New()
	require.NoError(t, err)

	return policy
}

func newLegacyPolicy(t *testing.T) *agency.SingleRoutePolicy {
	policy, err := agency.NewSingleRoutePolicy(LegacyConfig())
	require.NoError(t, err)

	return policy
}

func TestExcludeRoute(t *testing.T) {
	policy := newPolicy(t)

	tests := []struct {
		route   gtfs.Route
		exclude bool
	}{
		{gtfs.Route{ShortName: "998"}, false},
		{gtfs.Route{ShortName: "999"}, true},
		{gtfs.Route{LongName: "SeaBus"}, false},
		{gtfs.Route{LongName: "seabus"}, false},
		{gtfs.Route{ShortName: "SEABUS"}, false},
		{gtfs.Route{LongName: "SeaBus Shuttle"}, true},
		{gtfs.Route{ShortName: "9980"}, true},
		{gtfs.Route{}, true},
		{busRoute, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.exclude, policy.ExcludeRoute(test.route), test.route.String())
	}
}

func TestLegacyExcludeRouteIsExactShortName(t *testing.T) {
	policy := newLegacyPolicy(t)

	assert.False(t, policy.ExcludeRoute(gtfs.Route{ShortName: "998"}))
	assert.False(t, policy.ExcludeRoute(gtfs.Route{ShortName: "SeaBus"}))
	assert.True(t, policy.ExcludeRoute(gtfs.Route{ShortName: "SEABUS"}))
	assert.True(t, policy.ExcludeRoute(gtfs.Route{LongName: "SeaBus"}))
}

func TestRouteNamesAndColours(t *testing.T) {
	policy := newPolicy(t)

	shortName, err := policy.RouteShortName(seabusRoute)
	require.NoError(t, err)
	assert.Equal(t, "SB", shortName)

	longName, err := policy.RouteLongName(seabusRoute)
	require.NoError(t, err)
	assert.Equal(t, "SeaBus", longName)

	colour, err := policy.RouteColour(seabusRoute)
	require.NoError(t, err)
	assert.Equal(t, RouteColour, colour)
	assert.Equal(t, AgencyColour, policy.AgencyColour())
	assert.NotEqual(t, policy.AgencyColour(), colour)
	assert.Equal(t, RouteTypeFerry, policy.AgencyRouteType())

	_, err = policy.RouteShortName(busRoute)
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)
	_, err = policy.RouteLongName(busRoute)
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)
	_, err = policy.RouteColour(busRoute)
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)

	var unsupportedErr *agency.UnsupportedEntityError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "route colour", unsupportedErr.Kind)
}

func TestRouteID(t *testing.T) {
	id, err := newPolicy(t).RouteID(seabusRoute)
	require.NoError(t, err)
	assert.Equal(t, FeedRouteID, id)

	_, err = newPolicy(t).RouteID(gtfs.Route{ID: "SB-1", LongName: "SeaBus"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, agency.ErrUnsupportedEntity)

	legacy := newLegacyPolicy(t)
	id, err = legacy.RouteID(seabusRoute)
	require.NoError(t, err)
	assert.Equal(t, LegacyRouteID, id)

	_, err = legacy.RouteID(busRoute)
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)
}

func TestTripHeadsign(t *testing.T) {
	policy := newPolicy(t)

	headsign, err := policy.TripHeadsign(FeedRouteID, gtfs.Trip{DirectionID: "0"})
	require.NoError(t, err)
	assert.Equal(t, agency.DirectionHeadsign(agency.DirectionNorth), headsign)

	headsign, err = policy.TripHeadsign(FeedRouteID, gtfs.Trip{DirectionID: "1"})
	require.NoError(t, err)
	assert.Equal(t, agency.DirectionHeadsign(agency.DirectionSouth), headsign)

	_, err = policy.TripHeadsign(FeedRouteID, gtfs.Trip{DirectionID: "2"})
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)

	_, err = policy.TripHeadsign(FeedRouteID, gtfs.Trip{DirectionID: ""})
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)

	_, err = policy.TripHeadsign(6612, gtfs.Trip{DirectionID: "0"})
	assert.ErrorIs(t, err, agency.ErrUnsupportedEntity)

	headsign, err = newLegacyPolicy(t).TripHeadsign(LegacyRouteID, gtfs.Trip{DirectionID: "1"})
	require.NoError(t, err)
	assert.Equal(t, agency.DirectionHeadsign(agency.DirectionSouth), headsign)
}

func TestMergeHeadsignsAlwaysFails(t *testing.T) {
	policy := newPolicy(t)

	inputs := []agency.TripHeadsign{
		agency.DirectionHeadsign(agency.DirectionNorth),
		agency.DirectionHeadsign(agency.DirectionSouth),
		agency.StringHeadsign("Waterfront"),
		{},
	}

	for _, a := range inputs {
		for _, b := range inputs {
			_, err := policy.MergeHeadsigns(a, b)
			assert.ErrorIs(t, err, agency.ErrUnsupportedEntity, "%s & %s", a, b)
		}
	}
}

func TestCleanStopName(t *testing.T) {
	policy := newPolicy(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"123 Main St SeaBus Northbound", "123 Main Street"},
		{"Lonsdale Quay SeaBus Southbound", "Lonsdale Quay"},
		{"WATERFRONT STATION SEABUS NORTHBOUND", "Waterfront Station"},
		{"SeaBus", ""},
		{"First Ave @ 3RD St", "1st Avenue @ 3rd Street"},
		{"", ""},
	}

	for _, test := range tests {
		cleaned := policy.CleanStopName(test.input)
		assert.Equal(t, test.expected, cleaned, test.input)
		assert.NotRegexp(t, `(?i)\bseabus\b`, cleaned)
	}
}

func TestCleanLabelsAreIdempotent(t *testing.T) {
	policy := newPolicy(t)

	inputs := []string{
		"123 Main St SeaBus Northbound",
		"Lonsdale Quay SeaBus Southbound",
		"waterfront stn (bay 2)",
		"  first ave  &  007 st  ",
		"Esplanade Blvd - SeaBus",
		"12th St / 21St Ave",
		"Waterfront ((Northbound))",
		"Waterfront ( ( ) )",
		"Bay 1 , , Lonsdale Quay",
		"st. george st",
		"North ( ) Bound",
		"",
	}

	for _, input := range inputs {
		stopName := policy.CleanStopName(input)
		assert.Equal(t, stopName, policy.CleanStopName(stopName), input)

		headsign := policy.CleanTripHeadsign(input)
		assert.Equal(t, headsign, policy.CleanTripHeadsign(headsign), input)
	}

	assert.Equal(t, "Waterfront", policy.CleanStopName("Waterfront ((Northbound))"))
	assert.Equal(t, "Bay 1, Lonsdale Quay", policy.CleanStopName("Bay 1 , , Lonsdale Quay"))
	assert.Equal(t, "St. George Street", policy.CleanStopName("st. george st"))
}

func TestStopID(t *testing.T) {
	legacy := newLegacyPolicy(t)

	id, err := legacy.StopID(gtfs.Stop{ID: "12034", Code: "4821"})
	require.NoError(t, err)
	assert.Equal(t, int64(4821), id)

	id, err = legacy.StopID(gtfs.Stop{ID: "77", Code: ""})
	require.NoError(t, err)
	assert.Equal(t, int64(1000077), id)

	id, err = legacy.StopID(gtfs.Stop{ID: "77", Code: "A12"})
	require.NoError(t, err)
	assert.Equal(t, int64(1000077), id)

	_, err = legacy.StopID(gtfs.Stop{ID: "LQ", Code: ""})
	assert.Error(t, err)

	id, err = newPolicy(t).StopID(gtfs.Stop{ID: "12034", Code: "4821"})
	require.NoError(t, err)
	assert.Equal(t, int64(12034), id)
}
