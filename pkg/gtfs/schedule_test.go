package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFeed = map[string]string{
	"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
		"TL,TransLink,https://www.translink.ca,America/Vancouver\n",
	"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
		"6771,TL,,SeaBus,4\n" +
		"6612,TL,99,Commercial-Broadway/UBC (B-Line),3\n",
	"trips.txt": "route_id,service_id,trip_id,trip_headsign,direction_id\n" +
		"6771,1,100,Lonsdale Quay,0\n" +
		"6771,1,101,Waterfront,1\n",
	"stops.txt": "stop_id,stop_code,stop_name,stop_lat,stop_lon\n" +
		"1,,Lonsdale Quay SeaBus Southbound,49.3099,-123.0830\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"100,06:16:00,06:16:00,1,1\n",
	"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
		"1,1,1,1,1,1,0,0,20240101,20241231\n",
	"calendar_dates.txt": "service_id,date,exception_type\n" +
		"1,20241225,2\n",
	"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n",
}

func zipFeed(t *testing.T, files map[string]string) []byte {
	buffer := &bytes.Buffer{}
	writer := zip.NewWriter(buffer)

	for name, contents := range files {
		file, err := writer.Create(name)
		require.NoError(t, err)
		_, err = file.Write([]byte(contents))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func assertTestFeed(t *testing.T, schedule *Schedule) {
	require.Len(t, schedule.Agencies, 1)
	require.Len(t, schedule.Routes, 2)
	require.Len(t, schedule.Trips, 2)
	require.Len(t, schedule.Stops, 1)
	require.Len(t, schedule.StopTimes, 1)
	require.Len(t, schedule.Calendars, 1)
	require.Len(t, schedule.CalendarDates, 1)

	assert.Equal(t, "SeaBus", schedule.Routes[0].LongName)
	assert.Equal(t, 4, schedule.Routes[0].Type)
	assert.Equal(t, "Lonsdale Quay SeaBus Southbound", schedule.Stops[0].Name)
	assert.InDelta(t, 49.3099, schedule.Stops[0].Latitude, 0.00001)
	assert.Equal(t, 1, schedule.Calendars[0].Friday)
	assert.Equal(t, 0, schedule.Calendars[0].Saturday)
	assert.Equal(t, 2, schedule.CalendarDates[0].ExceptionType)

	route, exists := schedule.RouteByID("6612")
	assert.True(t, exists)
	assert.Equal(t, "99", route.ShortName)

	_, exists = schedule.RouteByID("1")
	assert.False(t, exists)
}

func TestParseFile(t *testing.T) {
	schedule := &Schedule{}
	err := schedule.ParseFile(bytes.NewReader(zipFeed(t, testFeed)))
	require.NoError(t, err)

	assertTestFeed(t, schedule)
}

func TestParseFileNotZip(t *testing.T) {
	schedule := &Schedule{}
	err := schedule.ParseFile(bytes.NewReader([]byte("route_id\n1\n")))

	assert.Error(t, err)
}

func TestParseZipFileAndUnpacked(t *testing.T) {
	directory := t.TempDir()
	for name, contents := range testFeed {
		require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(contents), 0o644))
	}

	schedule, err := ParseUnpacked(directory)
	require.NoError(t, err)
	assertTestFeed(t, schedule)

	zipPath := filepath.Join(t.TempDir(), "gtfs.zip")
	require.NoError(t, os.WriteFile(zipPath, zipFeed(t, testFeed), 0o644))

	schedule, err = ParseZipFile(zipPath)
	require.NoError(t, err)
	assertTestFeed(t, schedule)

	_, err = ParseZipFile(directory)
	assert.ErrorContains(t, err, "is a directory")

	_, err = ParseUnpacked(zipPath)
	assert.ErrorContains(t, err, "is not a directory")

	_, err = ParseZipFile(filepath.Join(directory, "missing.zip"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTripDirection(t *testing.T) {
	direction, ok := Trip{DirectionID: "1"}.Direction()
	assert.True(t, ok)
	assert.Equal(t, 1, direction)

	_, ok = Trip{DirectionID: ""}.Direction()
	assert.False(t, ok)

	_, ok = Trip{DirectionID: "north"}.Direction()
	assert.False(t, ok)
}
