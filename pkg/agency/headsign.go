package agency

import "fmt"

type HeadsignType string

const (
	HeadsignTypeString    HeadsignType = "string"
	HeadsignTypeDirection HeadsignType = "direction"
)

type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionNorth, DirectionSouth, DirectionEast, DirectionWest:
		return true
	default:
		return false
	}
}

type TripHeadsign struct {
	Type  HeadsignType
	Value string
}

func StringHeadsign(value string) TripHeadsign {
	return TripHeadsign{Type: HeadsignTypeString, Value: value}
}

func DirectionHeadsign(direction Direction) TripHeadsign {
	return TripHeadsign{Type: HeadsignTypeDirection, Value: string(direction)}
}

func (h TripHeadsign) String() string {
	return fmt.Sprintf("%s:%s", h.Type, h.Value)
}
