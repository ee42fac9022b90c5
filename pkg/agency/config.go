package agency

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type RouteMatch string

const (
	// RouteMatchExact compares allow-list tokens case-sensitively
	RouteMatchExact RouteMatch = "exact"
	// RouteMatchFold compares allow-list tokens ignoring case
	RouteMatchFold RouteMatch = "fold"
)

type RouteIDAssignment string

const (
	// RouteIDFixed assigns FixedRouteID to the route family
	RouteIDFixed RouteIDAssignment = "fixed"
	// RouteIDDefault keeps the numeric feed route_id
	RouteIDDefault RouteIDAssignment = "default"
)

type StopIDAssignment string

const (
	// StopIDStopCode prefers a digits only stop_code and offsets stop_id otherwise
	StopIDStopCode StopIDAssignment = "stop-code"
	// StopIDDefault keeps the numeric feed stop_id
	StopIDDefault StopIDAssignment = "default"
)

// DefaultStopIDOffset keeps offset stop_ids clear of genuine stop codes
const DefaultStopIDOffset = 1_000_000

// Config describes a policy that keeps a single route family
type Config struct {
	IncludeRoutes []string   `yaml:"IncludeRoutes" validate:"required,min=1,dive,required"`
	RouteMatch    RouteMatch `yaml:"RouteMatch" validate:"oneof=exact fold"`
	MatchLongName bool       `yaml:"MatchLongName"`

	RouteIDAssignment RouteIDAssignment `yaml:"RouteIDAssignment" validate:"oneof=fixed default"`
	FixedRouteID      int64             `yaml:"FixedRouteID" validate:"required_if=RouteIDAssignment fixed,gte=0"`

	ShortName    string `yaml:"ShortName" validate:"required"`
	LongName     string `yaml:"LongName" validate:"required"`
	AgencyColour string `yaml:"AgencyColour" validate:"len=6,hexadecimal"`
	RouteColour  string `yaml:"RouteColour" validate:"len=6,hexadecimal"`
	RouteType    int    `yaml:"RouteType" validate:"gte=0"`

	// DirectionRouteID is the output route id that Directions apply to
	DirectionRouteID int64             `yaml:"DirectionRouteID" validate:"gt=0"`
	Directions       map[int]Direction `yaml:"Directions"`

	// RouteKeywords are removed from stop names and trip headsigns
	RouteKeywords []string `yaml:"RouteKeywords"`

	StopIDAssignment StopIDAssignment `yaml:"StopIDAssignment" validate:"oneof=stop-code default"`
	StopIDOffset     int64            `yaml:"StopIDOffset" validate:"required_if=StopIDAssignment stop-code,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateDirections, Config{})

	return v
}

func validateDirections(sl validator.StructLevel) {
	config := sl.Current().Interface().(Config)

	for indicator, direction := range config.Directions {
		if !direction.Valid() {
			sl.ReportError(config.Directions, fmt.Sprintf("Directions[%d]", indicator), "Directions", "direction", string(direction))
		}
	}
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}
