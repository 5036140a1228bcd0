package dataset

import (
	"fmt"
	"sort"

	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "dataset",
		Usage: "Manage the GTFS dataset cache",
		Subcommands: []*cli.Command{
			{
				Name:  "download",
				Usage: "download the GTFS bundle into the local cache",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "re-download even if a cached bundle exists",
					},
				},
				Action: func(c *cli.Context) error {
					appConfig, err := config.Load()
					if err != nil {
						return err
					}

					manager := NewManager(appConfig.Dataset)
					_, err = manager.Fetch(c.Bool("force"))

					return err
				},
			},
			{
				Name:  "info",
				Usage: "print summary statistics for the cached dataset",
				Action: func(c *cli.Context) error {
					appConfig, err := config.Load()
					if err != nil {
						return err
					}

					manager := NewManager(appConfig.Dataset)
					schedule, err := manager.Load(false)
					if err != nil {
						return err
					}

					index := transit.NewIndex(schedule)

					fmt.Printf("Stops:      %d\n", len(index.Stops()))
					fmt.Printf("Routes:     %d\n", len(schedule.Routes))
					fmt.Printf("Trips:      %d\n", len(schedule.Trips))
					fmt.Printf("Stop times: %d\n", len(schedule.StopTimes))

					summary := index.TransportTypeSummary()
					transportTypes := maps.Keys(summary)
					sort.Slice(transportTypes, func(i, j int) bool {
						return transportTypes[i] < transportTypes[j]
					})

					fmt.Println("\nRoute types:")
					for _, transportType := range transportTypes {
						fmt.Printf("  %d: %s (%d routes)\n", int(transportType), transportType, summary[transportType])
					}

					return nil
				},
			},
		},
	}
}
