package generator

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/database"
	"github.com/travigo/agency-tools/pkg/datasets"
	"github.com/travigo/agency-tools/pkg/events"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the agency output for a dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "ID of the dataset",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Override the dataset source with a local GTFS bundle or URL",
			},
			&cli.StringFlag{
				Name:  "unpack",
				Usage: "Override how the source is unpacked (zip or none for a directory)",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Override the output directory or SQLite database path",
			},
			&cli.StringFlag{
				Name:  "destination",
				Usage: "Override the import destination (directory, database or sqlite)",
			},
		},
		Action: func(c *cli.Context) error {
			startTime := time.Now()

			dataset, err := datasets.GetDataset(c.String("id"))
			if err != nil {
				return err
			}

			if source := c.String("source"); source != "" {
				dataset.Source = source
			}
			if unpack := c.String("unpack"); unpack != "" {
				dataset.UnpackBundle = datasets.BundleFormat(unpack)
			}
			if outputDirectory := c.String("output"); outputDirectory != "" {
				dataset.Output = outputDirectory
			}
			if destination := c.String("destination"); destination != "" {
				dataset.ImportDestination = datasets.ImportDestination(destination)
			}

			log.Info().Str("id", dataset.Identifier).Str("source", dataset.Source).Msg("Found dataset")

			if dataset.Format != datasets.DataSetFormatGTFSSchedule {
				return fmt.Errorf("unrecognised format %s", dataset.Format)
			}

			policy, err := dataset.NewPolicy()
			if err != nil {
				return err
			}

			source, cleanup, err := datasets.ResolveSource(c.Context, dataset.Source)
			if err != nil {
				return err
			}
			defer cleanup()

			schedule, err := dataset.LoadSchedule(source)
			if err != nil {
				return err
			}

			output, err := Generate(schedule, policy)
			if err != nil {
				return err
			}

			output.Transform(dataset.Transforms)

			var snapshotID string

			switch dataset.ImportDestination {
			case datasets.ImportDestinationDirectory:
				if dataset.Output == "" {
					return fmt.Errorf("dataset %s has no output directory", dataset.Identifier)
				}

				err = WriteDirectory(dataset.Output, output, dataset.SupportedObjects)
			case datasets.ImportDestinationDatabase:
				if err := database.Connect(c.Context); err != nil {
					return err
				}
				defer database.Disconnect(c.Context)

				snapshotID, err = WriteDatabase(c.Context, dataset.Identifier, output, dataset.SupportedObjects)
			case datasets.ImportDestinationSQLite:
				if dataset.Output == "" {
					return fmt.Errorf("dataset %s has no output database", dataset.Identifier)
				}

				snapshotID, err = WriteSQLite(c.Context, dataset.Output, dataset.Identifier, output, dataset.SupportedObjects)
			default:
				err = fmt.Errorf("unrecognised import destination %s", dataset.ImportDestination)
			}
			if err != nil {
				return err
			}

			publisher, err := events.NewPublisher(c.Context)
			if err != nil {
				return err
			}
			defer publisher.Close()

			err = publisher.Publish(c.Context, &events.DatasetGenerated{
				DatasetID:     dataset.Identifier,
				Destination:   string(dataset.ImportDestination),
				SnapshotID:    snapshotID,
				Routes:        len(output.Routes),
				Trips:         len(output.Trips),
				Stops:         len(output.Stops),
				TripStops:     len(output.TripStops),
				Calendars:     len(output.Calendars),
				CalendarDates: len(output.CalendarDates),
				GeneratedAt:   time.Now(),
			})
			if err != nil {
				return err
			}

			log.Info().Msgf("Operation took %s", time.Since(startTime).String())

			return nil
		},
	}
}
