package datasets

type SupportedObjects struct {
	Agency        bool `yaml:"Agency"`
	Routes        bool `yaml:"Routes"`
	Trips         bool `yaml:"Trips"`
	Stops         bool `yaml:"Stops"`
	TripStops     bool `yaml:"TripStops"`
	Calendars     bool `yaml:"Calendars"`
	CalendarDates bool `yaml:"CalendarDates"`
}

func AllObjects() SupportedObjects {
	return SupportedObjects{
		Agency:        true,
		Routes:        true,
		Trips:         true,
		Stops:         true,
		TripStops:     true,
		Calendars:     true,
		CalendarDates: true,
	}
}

func (s SupportedObjects) IsZero() bool {
	return s == SupportedObjects{}
}
