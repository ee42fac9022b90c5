package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/datasets"
	"github.com/travigo/agency-tools/pkg/generator"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	_ = godotenv.Load(".env")

	if os.Getenv("AGENCYTOOLS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("AGENCYTOOLS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "agency-tools",
		Description: "Generate single route agency datasets from GTFS schedules",

		Commands: []*cli.Command{
			generator.RegisterCLI(),
			datasets.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
