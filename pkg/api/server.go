package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ovplanner/ovplanner/pkg/config"
	"github.com/ovplanner/ovplanner/pkg/matcher"
	"github.com/ovplanner/ovplanner/pkg/network"
	"github.com/ovplanner/ovplanner/pkg/planner"
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/rs/zerolog/log"
)

// Server serves journey planning over one immutable dataset snapshot. All
// request handling reads shared state without locks, which is safe because
// nothing mutates the index or graph after construction.
type Server struct {
	config  config.AppConfig
	index   *transit.Index
	matcher *matcher.Matcher
	planner *planner.Planner
}

func NewServer(appConfig config.AppConfig, index *transit.Index, graph *network.Graph) *Server {
	p := planner.NewPlanner(graph, index, log.Logger)
	p.MaxExplored = appConfig.Planner.MaxExplored

	return &Server{
		config:  appConfig,
		index:   index,
		matcher: matcher.NewMatcher(index, log.Logger),
		planner: p,
	}
}

func (server *Server) Listen(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", server.getVersion)

	stopsGroup := group.Group("/stops")
	stopsGroup.Get("/search", server.searchStops)

	journeysGroup := group.Group("/journeys")
	journeysGroup.Get("/plan", server.planJourneys)
	journeysGroup.Get("/direct", server.directConnections)

	return webApp.Listen(listen)
}
