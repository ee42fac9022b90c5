package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/agency-tools/pkg/database"
	"github.com/travigo/agency-tools/pkg/datasets"
	"go.mongodb.org/mongo-driver/mongo"
)

type outputFile struct {
	name    string
	records interface{}
}

func outputFiles(output *Output, objects datasets.SupportedObjects) []outputFile {
	var files []outputFile

	if objects.Agency && output.Agency != nil {
		files = append(files, outputFile{"agency.csv", []*MAgency{output.Agency}})
	}
	if objects.Routes {
		files = append(files, outputFile{"routes.csv", output.Routes})
	}
	if objects.Trips {
		files = append(files, outputFile{"trips.csv", output.Trips})
	}
	if objects.Stops {
		files = append(files, outputFile{"stops.csv", output.Stops})
	}
	if objects.TripStops {
		files = append(files, outputFile{"trip_stops.csv", output.TripStops})
	}
	if objects.Calendars {
		files = append(files, outputFile{"calendar.txt", output.Calendars})
	}
	if objects.CalendarDates {
		files = append(files, outputFile{"calendar_dates.txt", output.CalendarDates})
	}

	return files
}

// WriteDirectory writes one csv file per supported object kind, concurrently
func WriteDirectory(directory string, output *Output, objects datasets.SupportedObjects) error {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return err
	}

	p := pool.New().WithErrors()

	for _, file := range outputFiles(output, objects) {
		p.Go(func() error {
			return writeCSVFile(filepath.Join(directory, file.name), file.records)
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	log.Info().Str("directory", directory).Msg("Wrote dataset output")

	return nil
}

func writeCSVFile(path string, records interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := gocsv.MarshalFile(records, file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}

type record struct {
	PrimaryIdentifier    string      `bson:"primaryidentifier"`
	DatasetID            string      `bson:"datasetid"`
	SnapshotID           string      `bson:"snapshotid"`
	ModificationDateTime time.Time   `bson:"modificationdatetime"`
	Record               interface{} `bson:"record"`
}

type collectionRecords struct {
	collection string
	ids        []string
	records    []interface{}
}

func databaseRecords(output *Output, objects datasets.SupportedObjects) []collectionRecords {
	var collections []collectionRecords

	add := func(collection string, id string, value interface{}) {
		if len(collections) == 0 || collections[len(collections)-1].collection != collection {
			collections = append(collections, collectionRecords{collection: collection})
		}
		current := &collections[len(collections)-1]
		current.ids = append(current.ids, id)
		current.records = append(current.records, value)
	}

	if objects.Agency && output.Agency != nil {
		add(database.AgenciesCollection, output.Agency.ID, output.Agency)
	}
	if objects.Routes {
		for _, route := range output.Routes {
			add(database.RoutesCollection, fmt.Sprint(route.ID), route)
		}
	}
	if objects.Trips {
		for _, trip := range output.Trips {
			add(database.TripsCollection, trip.ID, trip)
		}
	}
	if objects.Stops {
		for _, stop := range output.Stops {
			add(database.StopsCollection, fmt.Sprint(stop.ID), stop)
		}
	}
	if objects.TripStops {
		for _, tripStop := range output.TripStops {
			add(database.TripStopsCollection, fmt.Sprintf("%s:%d:%d", tripStop.TripID, tripStop.StopSequence, tripStop.StopID), tripStop)
		}
	}
	if objects.Calendars {
		for _, calendar := range output.Calendars {
			add(database.CalendarsCollection, calendar.ServiceID, calendar)
		}
	}
	if objects.CalendarDates {
		for _, calendarDate := range output.CalendarDates {
			add(database.CalendarDatesCollection, fmt.Sprintf("%s:%s", calendarDate.ServiceID, calendarDate.Date), calendarDate)
		}
	}

	return collections
}

// WriteDatabase upserts every supported record, keyed by dataset and record id,
// then removes the dataset's records left by earlier snapshots
func WriteDatabase(ctx context.Context, datasetID string, output *Output, objects datasets.SupportedObjects) (string, error) {
	now := time.Now()
	snapshotID := uuid.New().String()

	collections := map[string]*mongo.Collection{}
	for _, name := range database.Collections {
		collection, err := database.GetCollection(name)
		if err != nil {
			return "", err
		}
		collections[name] = collection
	}

	p := pool.New().WithErrors().WithContext(ctx)

	for _, collectionRecords := range databaseRecords(output, objects) {
		collection := collections[collectionRecords.collection]

		p.Go(func(ctx context.Context) error {
			writer := database.NewBatchWriter(collectionRecords.collection, collection, database.DefaultBatchSize)

			for j, value := range collectionRecords.records {
				primaryIdentifier := fmt.Sprintf("%s:%s", datasetID, collectionRecords.ids[j])

				err := writer.Add(ctx, database.UpsertModel(primaryIdentifier, record{
					PrimaryIdentifier:    primaryIdentifier,
					DatasetID:            datasetID,
					SnapshotID:           snapshotID,
					ModificationDateTime: now,
					Record:               value,
				}))
				if err != nil {
					return err
				}
			}

			if err := writer.Flush(ctx); err != nil {
				return err
			}

			log.Debug().Str("collection", collectionRecords.collection).Int("written", writer.Written()).Msg("Collection written")

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return "", err
	}

	deleters := map[string]database.ManyDeleter{}
	for name, collection := range collections {
		deleters[name] = collection
	}
	if err := pruneDatabase(ctx, deleters, datasetID, snapshotID); err != nil {
		return "", err
	}

	log.Info().Str("dataset", datasetID).Str("snapshot", snapshotID).Msg("Wrote dataset to database")

	return snapshotID, nil
}

// pruneDatabase runs only after every collection of the new snapshot is written
func pruneDatabase(ctx context.Context, collections map[string]database.ManyDeleter, datasetID string, snapshotID string) error {
	p := pool.New().WithErrors().WithContext(ctx)

	for name, collection := range collections {
		p.Go(func(ctx context.Context) error {
			_, err := database.PruneSnapshot(ctx, name, collection, datasetID, snapshotID)
			return err
		})
	}

	return p.Wait()
}
