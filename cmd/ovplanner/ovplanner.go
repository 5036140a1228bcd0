package main

import (
	"os"
	"time"

	"github.com/ovplanner/ovplanner/pkg/api"
	"github.com/ovplanner/ovplanner/pkg/dataset"
	"github.com/ovplanner/ovplanner/pkg/planner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("OVPLANNER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("OVPLANNER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "ovplanner",
		Description: "Journey planner over the Dutch public transport timetable",

		Commands: []*cli.Command{
			dataset.RegisterCLI(),
			planner.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
