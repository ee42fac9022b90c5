package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

type Agency struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	Timezone string `csv:"agency_timezone"`
	Language string `csv:"agency_lang"`
	Phone    string `csv:"agency_phone"`
	FareURL  string `csv:"agency_fare_url"`
	Email    string `csv:"agency_email"`
}

type Stop struct {
	ID           string  `csv:"stop_id"`
	Code         string  `csv:"stop_code"`
	Name         string  `csv:"stop_name"`
	Description  string  `csv:"stop_desc"`
	Latitude     float64 `csv:"stop_lat"`
	Longitude    float64 `csv:"stop_lon"`
	ZoneID       string  `csv:"zone_id"`
	URL          string  `csv:"stop_url"`
	Type         string  `csv:"location_type"`
	Parent       string  `csv:"parent_station"`
	Timezone     string  `csv:"stop_timezone"`
	Wheelchair   string  `csv:"wheelchair_boarding"`
	PlatformCode string  `csv:"platform_code"`
}

type Route struct {
	ID          string `csv:"route_id"`
	AgencyID    string `csv:"agency_id"`
	ShortName   string `csv:"route_short_name"`
	LongName    string `csv:"route_long_name"`
	Description string `csv:"route_desc"`
	URL         string `csv:"route_url"`
	Colour      string `csv:"route_color"`
	TextColour  string `csv:"route_text_color"`
	Type        int    `csv:"route_type"`
	SortOrder   int    `csv:"route_sort_order"`
}

func (r Route) String() string {
	return fmt.Sprintf("Route{ID:%s ShortName:%q LongName:%q}", r.ID, r.ShortName, r.LongName)
}

type Trip struct {
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	ID                   string `csv:"trip_id"`
	Headsign             string `csv:"trip_headsign"`
	Name                 string `csv:"trip_short_name"`
	DirectionID          string `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible int8   `csv:"wheelchair_accessible"`
	BikesAllowed         int8   `csv:"bikes_allowed"`
}

// Direction parses direction_id, the second value is false when the field is blank or not a number
func (t Trip) Direction() (int, bool) {
	direction, err := strconv.Atoi(strings.TrimSpace(t.DirectionID))
	if err != nil {
		return 0, false
	}

	return direction, true
}

func (t Trip) String() string {
	return fmt.Sprintf("Trip{ID:%s RouteID:%s ServiceID:%s DirectionID:%q}", t.ID, t.RouteID, t.ServiceID, t.DirectionID)
}

type StopTime struct {
	TripID        string `csv:"trip_id"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
	StopID        string `csv:"stop_id"`
	StopHeadsign  string `csv:"stop_headsign"`
	StopSequence  int    `csv:"stop_sequence"`
	PickupType    int8   `csv:"pickup_type"`
	DropOffType   int8   `csv:"drop_off_type"`
}

type Calendar struct {
	ServiceID string `csv:"service_id"`
	Monday    int    `csv:"monday"`
	Tuesday   int    `csv:"tuesday"`
	Wednesday int    `csv:"wednesday"`
	Thursday  int    `csv:"thursday"`
	Friday    int    `csv:"friday"`
	Saturday  int    `csv:"saturday"`
	Sunday    int    `csv:"sunday"`
	Start     string `csv:"start_date"`
	End       string `csv:"end_date"`
}

type CalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}
