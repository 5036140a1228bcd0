package api

import (
	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/dataset"
	"github.com/ovplanner/ovplanner/pkg/network"
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, defaults to the configured value",
					},
				},
				Action: func(c *cli.Context) error {
					appConfig, err := config.Load()
					if err != nil {
						return err
					}

					manager := dataset.NewManager(appConfig.Dataset)
					schedule, err := manager.Load(false)
					if err != nil {
						return err
					}

					index := transit.NewIndex(schedule)
					graph := network.BuildGraph(index, log.Logger)

					server := NewServer(appConfig, index, graph)

					listen := c.String("listen")
					if listen == "" {
						listen = appConfig.Server.Listen
					}

					return server.Listen(listen)
				},
			},
		},
	}
}
