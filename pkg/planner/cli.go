package planner

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/dataset"
	"github.com/ovplanner/ovplanner/pkg/matcher"
	"github.com/ovplanner/ovplanner/pkg/network"
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "journey",
		Usage: "Find journeys between stops",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "find journey options between two stops",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin stop name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination stop name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-transfers",
						Value: DefaultMaxTransfers,
						Usage: "maximum number of transfers",
					},
					&cli.StringFlag{
						Name:  "mode",
						Usage: "only keep journeys where every leg uses this mode (eg. metro)",
					},
					&cli.BoolFlag{
						Name:  "debug-dump",
						Usage: "dump raw journey structures",
					},
				},
				Action: planAction,
			},
			{
				Name:  "search-stops",
				Usage: "fuzzy search stops by name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "stop name query",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "threshold",
						Value: matcher.DefaultThreshold,
						Usage: "minimum match score (0-100)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: matcher.DefaultLimit,
						Usage: "maximum number of distinct stop names",
					},
				},
				Action: searchStopsAction,
			},
			{
				Name:  "direct",
				Usage: "list trips directly connecting two stops",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin stop name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination stop name",
						Required: true,
					},
				},
				Action: directAction,
			},
		},
	}
}

type environment struct {
	config  config.AppConfig
	index   *transit.Index
	graph   *network.Graph
	matcher *matcher.Matcher
	planner *Planner
}

func setupEnvironment() (*environment, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, err
	}

	manager := dataset.NewManager(appConfig.Dataset)
	schedule, err := manager.Load(false)
	if err != nil {
		return nil, err
	}

	index := transit.NewIndex(schedule)
	graph := network.BuildGraph(index, log.Logger)

	p := NewPlanner(graph, index, log.Logger)
	p.MaxExplored = appConfig.Planner.MaxExplored

	return &environment{
		config:  appConfig,
		index:   index,
		graph:   graph,
		matcher: matcher.NewMatcher(index, log.Logger),
		planner: p,
	}, nil
}

func (env *environment) resolveStop(query string) (*transit.Stop, error) {
	matches := env.matcher.Search(query, env.config.Matcher.Threshold, env.config.Matcher.Limit)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no stop matches %q", query)
	}

	best := matches[0]
	log.Info().
		Str("query", query).
		Str("stop", best.Stop.Name).
		Str("id", best.Stop.ID).
		Int("score", best.Score).
		Msg("Resolved stop")

	return best.Stop, nil
}

func planAction(c *cli.Context) error {
	env, err := setupEnvironment()
	if err != nil {
		return err
	}

	origin, err := env.resolveStop(c.String("from"))
	if err != nil {
		return err
	}
	destination, err := env.resolveStop(c.String("to"))
	if err != nil {
		return err
	}

	journeys, err := env.planner.FindJourneys(origin.ID, destination.ID, c.Int("max-transfers"))
	if err != nil {
		return err
	}

	if c.String("mode") != "" {
		transportType, err := transit.ParseTransportType(c.String("mode"))
		if err != nil {
			return err
		}

		journeys = FilterJourneys(journeys, ModeOnly(transportType))
	}

	if c.Bool("debug-dump") {
		pretty.Println(journeys)
	}

	if len(journeys) == 0 {
		fmt.Println("No journeys found")
		return nil
	}

	fmt.Printf("Found %d journey options from %s to %s\n", len(journeys), origin.Name, destination.Name)
	for i, journey := range journeys {
		fmt.Println()
		fmt.Print(FormatJourney(journey, i+1))
	}

	return nil
}

func searchStopsAction(c *cli.Context) error {
	env, err := setupEnvironment()
	if err != nil {
		return err
	}

	matches := env.matcher.Search(c.String("name"), c.Int("threshold"), c.Int("limit"))

	if len(matches) == 0 {
		fmt.Println("No matching stops")
		return nil
	}

	for _, match := range matches {
		fmt.Printf("%3d  %s (%s)\n", match.Score, match.Stop.Name, match.Stop.ID)
	}

	return nil
}

func directAction(c *cli.Context) error {
	env, err := setupEnvironment()
	if err != nil {
		return err
	}

	origin, err := env.resolveStop(c.String("from"))
	if err != nil {
		return err
	}
	destination, err := env.resolveStop(c.String("to"))
	if err != nil {
		return err
	}

	legs, err := env.planner.DirectConnections(origin.ID, destination.ID)
	if err != nil {
		return err
	}

	if len(legs) == 0 {
		fmt.Println("No direct connections")
		return nil
	}

	for _, leg := range legs {
		fmt.Printf("%s (%s): %s -> %s\n", leg.RouteName, leg.TransportType, leg.FromStopName, leg.ToStopName)
	}

	return nil
}
