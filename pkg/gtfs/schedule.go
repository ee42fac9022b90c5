package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

type Schedule struct {
	Agencies      []Agency
	Stops         []Stop
	Routes        []Route
	Trips         []Trip
	StopTimes     []StopTime
	Calendars     []Calendar
	CalendarDates []CalendarDate
}

func init() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		return r
	})
}

func (gtfs *Schedule) fileMap() map[string]interface{} {
	return map[string]interface{}{
		"agency.txt":         &gtfs.Agencies,
		"stops.txt":          &gtfs.Stops,
		"routes.txt":         &gtfs.Routes,
		"trips.txt":          &gtfs.Trips,
		"stop_times.txt":     &gtfs.StopTimes,
		"calendar.txt":       &gtfs.Calendars,
		"calendar_dates.txt": &gtfs.CalendarDates,
	}
}

// ParseFile reads a zipped GTFS schedule
func (gtfs *Schedule) ParseFile(reader io.Reader) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}

	fileMap := gtfs.fileMap()

	for _, zipFile := range archive.File {
		fileName := path.Base(zipFile.Name)
		destination, exists := fileMap[fileName]
		if !exists {
			log.Debug().Str("file", zipFile.Name).Msg("Ignoring gtfs file")
			continue
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return err
		}

		err = gocsv.Unmarshal(fileReader, destination)
		fileReader.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", fileName, err)
		}
	}

	return nil
}

// ParseDirectory reads an unpacked GTFS schedule, missing optional files are skipped
func (gtfs *Schedule) ParseDirectory(directory string) error {
	for fileName, destination := range gtfs.fileMap() {
		file, err := os.Open(filepath.Join(directory, fileName))
		if os.IsNotExist(err) {
			log.Debug().Str("file", fileName).Msg("Missing gtfs file")
			continue
		} else if err != nil {
			return err
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		err = gocsv.Unmarshal(file, destination)
		file.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", fileName, err)
		}
	}

	return nil
}

// ParseZipFile loads a schedule from a zip bundle on disk
func ParseZipFile(path string) (*Schedule, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a zip bundle", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	schedule := &Schedule{}
	return schedule, schedule.ParseFile(file)
}

// ParseUnpacked loads a schedule from a directory of GTFS text files
func ParseUnpacked(path string) (*Schedule, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	schedule := &Schedule{}
	return schedule, schedule.ParseDirectory(path)
}

func (gtfs *Schedule) RouteByID(id string) (Route, bool) {
	for _, route := range gtfs.Routes {
		if route.ID == id {
			return route, true
		}
	}

	return Route{}, false
}
