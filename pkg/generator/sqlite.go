package generator

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/database"
	"github.com/travigo/agency-tools/pkg/datasets"
)

// WriteSQLite upserts the output into the SQLite database at path as one snapshot
func WriteSQLite(ctx context.Context, path string, datasetID string, output *Output, objects datasets.SupportedObjects) (string, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	snapshot, err := db.BeginSnapshot(ctx, datasetID)
	if err != nil {
		return "", err
	}

	if err := writeSnapshot(ctx, snapshot, output, objects); err != nil {
		snapshot.Rollback()
		return "", err
	}

	for _, table := range database.SnapshotTables {
		deleted, err := snapshot.Prune(ctx, table)
		if err != nil {
			snapshot.Rollback()
			return "", err
		}
		if deleted > 0 {
			log.Debug().Str("table", table).Int64("deleted", deleted).Msg("Pruned stale rows")
		}
	}

	if err := snapshot.Commit(); err != nil {
		return "", err
	}

	event := log.Info().Str("path", path).Str("snapshot", snapshot.ID)
	for _, table := range database.SnapshotTables {
		count, err := db.CountRows(ctx, table, datasetID)
		if err != nil {
			return "", err
		}
		event = event.Int(table, count)
	}
	event.Msg("Wrote dataset snapshot")

	return snapshot.ID, nil
}

func writeSnapshot(ctx context.Context, snapshot *database.Snapshot, output *Output, objects datasets.SupportedObjects) error {
	if objects.Agency && output.Agency != nil {
		a := output.Agency
		err := snapshot.Upsert(ctx, "agencies",
			[]string{"agency_id", "agency_name", "agency_url", "agency_timezone", "agency_color", "route_type"},
			a.ID, a.Name, a.URL, a.Timezone, a.Colour, a.RouteType)
		if err != nil {
			return err
		}
	}

	if objects.Routes {
		for _, r := range output.Routes {
			err := snapshot.Upsert(ctx, "routes",
				[]string{"route_id", "source_route_id", "route_short_name", "route_long_name", "route_color", "route_type"},
				r.ID, r.SourceID, r.ShortName, r.LongName, r.Colour, r.Type)
			if err != nil {
				return err
			}
		}
	}

	if objects.Trips {
		for _, t := range output.Trips {
			err := snapshot.Upsert(ctx, "trips",
				[]string{"trip_id", "route_id", "service_id", "direction_id", "headsign_type", "headsign_value"},
				t.ID, t.RouteID, t.ServiceID, t.DirectionID, string(t.HeadsignType), t.HeadsignValue)
			if err != nil {
				return err
			}
		}
	}

	if objects.Stops {
		for _, s := range output.Stops {
			err := snapshot.Upsert(ctx, "stops",
				[]string{"stop_id", "source_stop_id", "stop_code", "stop_name", "stop_lat", "stop_lon"},
				s.ID, s.SourceID, s.Code, s.Name, s.Latitude, s.Longitude)
			if err != nil {
				return err
			}
		}
	}

	if objects.TripStops {
		for _, ts := range output.TripStops {
			err := snapshot.Upsert(ctx, "trip_stops",
				[]string{"trip_id", "stop_sequence", "stop_id", "arrival_time", "departure_time"},
				ts.TripID, ts.StopSequence, ts.StopID, ts.ArrivalTime, ts.DepartureTime)
			if err != nil {
				return err
			}
		}
	}

	if objects.Calendars {
		for _, c := range output.Calendars {
			err := snapshot.Upsert(ctx, "calendars",
				[]string{"service_id", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "start_date", "end_date"},
				c.ServiceID, c.Monday, c.Tuesday, c.Wednesday, c.Thursday, c.Friday, c.Saturday, c.Sunday, c.Start, c.End)
			if err != nil {
				return err
			}
		}
	}

	if objects.CalendarDates {
		for _, cd := range output.CalendarDates {
			err := snapshot.Upsert(ctx, "calendar_dates",
				[]string{"service_id", "date", "exception_type"},
				cd.ServiceID, cd.Date, cd.ExceptionType)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
