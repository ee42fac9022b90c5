package cleanutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStreetTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123 Main St", "123 Main Street"},
		{"Lonsdale Ave.", "Lonsdale Avenue"},
		{"Marine Dr & Pemberton Ave", "Marine Drive & Pemberton Avenue"},
		{"Waterfront Stn", "Waterfront Stn"},
		{"Street", "Street"},
		{"Esplanade Blvd", "Esplanade Boulevard"},
		{"St. George St", "St. George Street"},
		{"Lonsdale St.", "Lonsdale Street"},
		{"Main St Station", "Main Street Station"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CleanStreetTypes(test.input), test.input)
		assert.Equal(t, test.expected, CleanStreetTypes(CleanStreetTypes(test.input)), test.input)
	}
}

func TestCleanNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123 Main", "123 Main"},
		{"First Avenue", "1st Avenue"},
		{"THIRD Street", "3rd Street"},
		{"3RD Street", "3rd Street"},
		{"11St Street", "11th Street"},
		{"22th Avenue", "22nd Avenue"},
		{"007 Bay", "7 Bay"},
		{"Bay 0", "Bay 0"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CleanNumbers(test.input), test.input)
		assert.Equal(t, test.expected, CleanNumbers(CleanNumbers(test.input)), test.input)
	}
}

func TestOrdinalSuffix(t *testing.T) {
	assert.Equal(t, "st", OrdinalSuffix("1"))
	assert.Equal(t, "nd", OrdinalSuffix("2"))
	assert.Equal(t, "rd", OrdinalSuffix("23"))
	assert.Equal(t, "th", OrdinalSuffix("11"))
	assert.Equal(t, "th", OrdinalSuffix("112"))
	assert.Equal(t, "st", OrdinalSuffix("101"))
}

func TestCleanBoundsAndWords(t *testing.T) {
	seabus := NewWordPattern("seabus")

	assert.Equal(t, "Lonsdale Quay", CleanLabel(CleanBounds(CleanWords("Lonsdale Quay SeaBus Northbound", seabus))))
	assert.Equal(t, "Waterfront", CleanLabel(CleanBounds("Waterfront South Bound")))
	assert.Equal(t, "Seabusway", CleanWords("Seabusway", seabus))
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Lonsdale   Quay ", "Lonsdale Quay"},
		{"Waterfront ( ) - ", "Waterfront"},
		{"Bay 1 , Lonsdale", "Bay 1, Lonsdale"},
		{"Station ( Bay 2 )", "Station (Bay 2)"},
		{"Waterfront ( ( ) )", "Waterfront"},
		{"Waterfront (( ))", "Waterfront"},
		{"Bay 1 , , Lonsdale", "Bay 1, Lonsdale"},
		{"Bay 1;, Lonsdale", "Bay 1; Lonsdale"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CleanLabel(test.input), test.input)
		assert.Equal(t, test.expected, CleanLabel(CleanLabel(test.input)), test.input)
	}
}

func TestCasingIsEnglish(t *testing.T) {
	assert.Equal(t, "Lonsdale Quay", ToTitle("LONSDALE QUAY"))
	assert.Equal(t, "waterfront station", ToLower("WATERFRONT STATION"))
	assert.Equal(t, "I", ToTitle("i"))
}
