package datasets

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "datasets",
		Usage: "Inspect the registered datasets",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every registered dataset",
				Action: func(c *cli.Context) error {
					registered, err := GetRegisteredDataSets()
					if err != nil {
						return err
					}

					for _, dataset := range registered {
						fmt.Printf("%s\t%s\t%s\t%s\t%s\n", dataset.Identifier, dataset.Format, dataset.UnpackBundle, dataset.PolicyPreset, dataset.ImportDestination)
					}

					log.Info().Int("count", len(registered)).Strs("presets", PresetNames()).Msg("Listed datasets")

					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Show a dataset and its resolved policy",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "ID of the dataset",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					dataset, err := GetDataset(c.String("id"))
					if err != nil {
						return err
					}

					config, err := dataset.PolicyConfig()
					if err != nil {
						return err
					}

					pretty.Println(dataset.Identifier, dataset.Provider, dataset.Source)
					pretty.Println(config)
					pretty.Println(dataset.Transforms)

					return nil
				},
			},
		},
	}
}
