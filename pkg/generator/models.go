package generator

import (
	"github.com/travigo/agency-tools/pkg/agency"
	"github.com/travigo/agency-tools/pkg/gtfs"
)

type MAgency struct {
	ID        string `csv:"agency_id" bson:"id"`
	Name      string `csv:"agency_name" bson:"name"`
	URL       string `csv:"agency_url" bson:"url"`
	Timezone  string `csv:"agency_timezone" bson:"timezone"`
	Colour    string `csv:"agency_color" bson:"colour"`
	RouteType int    `csv:"route_type" bson:"routetype"`
}

type MRoute struct {
	ID        int64  `csv:"route_id" bson:"id" copier:"-"`
	SourceID  string `csv:"source_route_id" bson:"sourceid"`
	ShortName string `csv:"route_short_name" bson:"shortname"`
	LongName  string `csv:"route_long_name" bson:"longname"`
	Colour    string `csv:"route_color" bson:"colour"`
	Type      int    `csv:"route_type" bson:"type"`
}

type MTrip struct {
	ID            string              `csv:"trip_id" bson:"id"`
	RouteID       int64               `csv:"route_id" bson:"routeid" copier:"-"`
	ServiceID     string              `csv:"service_id" bson:"serviceid"`
	DirectionID   string              `csv:"direction_id" bson:"directionid"`
	HeadsignType  agency.HeadsignType `csv:"headsign_type" bson:"headsigntype"`
	HeadsignValue string              `csv:"headsign_value" bson:"headsignvalue"`
}

func (t *MTrip) Headsign() agency.TripHeadsign {
	return agency.TripHeadsign{Type: t.HeadsignType, Value: t.HeadsignValue}
}

func (t *MTrip) SetHeadsign(headsign agency.TripHeadsign) {
	t.HeadsignType = headsign.Type
	t.HeadsignValue = headsign.Value
}

type MStop struct {
	ID        int64   `csv:"stop_id" bson:"id" copier:"-"`
	SourceID  string  `csv:"source_stop_id" bson:"sourceid"`
	Code      string  `csv:"stop_code" bson:"code"`
	Name      string  `csv:"stop_name" bson:"name"`
	Latitude  float64 `csv:"stop_lat" bson:"latitude"`
	Longitude float64 `csv:"stop_lon" bson:"longitude"`
}

type MTripStop struct {
	TripID        string `csv:"trip_id" bson:"tripid"`
	StopID        int64  `csv:"stop_id" bson:"stopid" copier:"-"`
	StopSequence  int    `csv:"stop_sequence" bson:"stopsequence"`
	ArrivalTime   string `csv:"arrival_time" bson:"arrivaltime"`
	DepartureTime string `csv:"departure_time" bson:"departuretime"`
}

// Output is everything generated for one dataset
type Output struct {
	Agency        *MAgency
	Routes        []*MRoute
	Trips         []*MTrip
	Stops         []*MStop
	TripStops     []*MTripStop
	Calendars     []*gtfs.Calendar
	CalendarDates []*gtfs.CalendarDate
}

func (o *Output) IsEmpty() bool {
	return len(o.Routes) == 0 && len(o.Trips) == 0 && len(o.Stops) == 0 &&
		len(o.TripStops) == 0 && len(o.Calendars) == 0 && len(o.CalendarDates) == 0
}
