package agency

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/travigo/agency-tools/pkg/cleanutils"
	"github.com/travigo/agency-tools/pkg/gtfs"
	"github.com/travigo/agency-tools/pkg/util"
)

// SingleRoutePolicy keeps exactly one route family and refuses to describe anything else
type SingleRoutePolicy struct {
	DefaultAgencyTools

	config          Config
	keywordPatterns []*regexp.Regexp
}

var _ Policy = (*SingleRoutePolicy)(nil)

func NewSingleRoutePolicy(config Config) (*SingleRoutePolicy, error) {
	if config.RouteIDAssignment == RouteIDFixed && config.DirectionRouteID == 0 {
		config.DirectionRouteID = config.FixedRouteID
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy config: %w", err)
	}

	policy := &SingleRoutePolicy{
		config: config,
	}

	for _, keyword := range util.UniqueStrings(config.RouteKeywords) {
		policy.keywordPatterns = append(policy.keywordPatterns, cleanutils.NewWordPattern(keyword))
	}

	return policy, nil
}

func (p *SingleRoutePolicy) Config() Config {
	return p.config
}

func (p *SingleRoutePolicy) matchToken(value string) bool {
	if p.config.RouteMatch == RouteMatchFold {
		return util.ContainsStringFold(p.config.IncludeRoutes, value)
	}

	return util.ContainsString(p.config.IncludeRoutes, value)
}

// IsFamilyRoute reports whether the route belongs to the recognised family
func (p *SingleRoutePolicy) IsFamilyRoute(route gtfs.Route) bool {
	if p.matchToken(route.ShortName) {
		return true
	}

	return p.config.MatchLongName && p.matchToken(route.LongName)
}

func (p *SingleRoutePolicy) ExcludeRoute(route gtfs.Route) bool {
	return !p.IsFamilyRoute(route)
}

func (p *SingleRoutePolicy) AgencyColour() string {
	return p.config.AgencyColour
}

func (p *SingleRoutePolicy) AgencyRouteType() int {
	return p.config.RouteType
}

func (p *SingleRoutePolicy) RouteID(route gtfs.Route) (int64, error) {
	if p.config.RouteIDAssignment == RouteIDDefault {
		return p.DefaultAgencyTools.RouteID(route)
	}

	if p.IsFamilyRoute(route) {
		return p.config.FixedRouteID, nil
	}

	return 0, unsupported("route", route)
}

func (p *SingleRoutePolicy) RouteShortName(route gtfs.Route) (string, error) {
	if p.IsFamilyRoute(route) {
		return p.config.ShortName, nil
	}

	return "", unsupported("route short name", route)
}

func (p *SingleRoutePolicy) RouteLongName(route gtfs.Route) (string, error) {
	if p.IsFamilyRoute(route) {
		return p.config.LongName, nil
	}

	return "", unsupported("route long name", route)
}

func (p *SingleRoutePolicy) RouteColour(route gtfs.Route) (string, error) {
	if p.IsFamilyRoute(route) {
		return p.config.RouteColour, nil
	}

	return "", unsupported("route colour", route)
}

func (p *SingleRoutePolicy) TripHeadsign(routeID int64, trip gtfs.Trip) (TripHeadsign, error) {
	if routeID == p.config.DirectionRouteID {
		if indicator, ok := trip.Direction(); ok {
			if direction, exists := p.config.Directions[indicator]; exists {
				return DirectionHeadsign(direction), nil
			}
		}
	}

	return TripHeadsign{}, unsupported("trip", fmt.Sprintf("%s (route ID: %d)", trip, routeID))
}

// MergeHeadsigns is never valid: the family has one route with two fixed directions
func (p *SingleRoutePolicy) MergeHeadsigns(headsign TripHeadsign, headsignToMerge TripHeadsign) (TripHeadsign, error) {
	return TripHeadsign{}, unsupported("trips to merge", fmt.Sprintf("%s & %s", headsign, headsignToMerge))
}

const maxLabelPasses = 8

// cleanLabel repeats the pipeline until it settles, since removing one
// fragment can expose another (e.g. "North ( ) Bound")
func (p *SingleRoutePolicy) cleanLabel(label string) string {
	for range maxLabelPasses {
		cleaned := p.cleanLabelPass(label)
		if cleaned == label {
			break
		}
		label = cleaned
	}

	return label
}

func (p *SingleRoutePolicy) cleanLabelPass(label string) string {
	label = cleanutils.ToTitle(label)
	label = cleanutils.CleanWords(label, p.keywordPatterns...)
	label = cleanutils.CleanBounds(label)
	label = cleanutils.CleanStreetTypes(label)
	label = cleanutils.CleanNumbers(label)

	return cleanutils.CleanLabel(label)
}

func (p *SingleRoutePolicy) CleanTripHeadsign(tripHeadsign string) string {
	return p.cleanLabel(tripHeadsign)
}

func (p *SingleRoutePolicy) CleanStopName(stopName string) string {
	return p.cleanLabel(stopName)
}

func (p *SingleRoutePolicy) StopID(stop gtfs.Stop) (int64, error) {
	if p.config.StopIDAssignment == StopIDDefault {
		return p.DefaultAgencyTools.StopID(stop)
	}

	if util.IsDigitsOnly(stop.Code) {
		code, err := strconv.ParseInt(stop.Code, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("stop code %q: %w", stop.Code, err)
		}

		return code, nil
	}

	id, err := strconv.ParseInt(stop.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stop id %q: %w", stop.ID, err)
	}

	return p.config.StopIDOffset + id, nil
}
