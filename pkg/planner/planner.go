// Package planner enumerates candidate journeys between two stops on the
// connectivity graph, bounded by a transfer limit and an exploration cap.
package planner

import (
	"errors"
	"fmt"

	"github.com/ovplanner/ovplanner/pkg/network"
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/rs/zerolog"
)

var (
	ErrStopNotFound     = errors.New("stop is not part of the network graph")
	ErrResourceExceeded = errors.New("journey search exceeded its exploration budget")
)

// DefaultMaxExplored bounds how many graph expansions one search may perform.
// Simple-path counts grow combinatorially with the transfer limit on dense
// networks, so an unbounded search is a hazard rather than a feature.
const DefaultMaxExplored = 250000

const DefaultMaxTransfers = 2

type Planner struct {
	graph  *network.Graph
	index  *transit.Index
	logger zerolog.Logger

	// MaxExplored caps node expansions for a single FindJourneys call.
	// Zero or negative means DefaultMaxExplored.
	MaxExplored int
}

func NewPlanner(graph *network.Graph, index *transit.Index, logger zerolog.Logger) *Planner {
	return &Planner{
		graph:  graph,
		index:  index,
		logger: logger,
	}
}

type search struct {
	graph       *network.Graph
	destination string
	maxEdges    int

	onPath   map[string]bool
	path     []*network.Edge
	journeys [][]*network.Edge

	explored    int
	maxExplored int
}

// FindJourneys returns every simple directed path from origin to destination
// using at most maxTransfers+1 legs, in deterministic depth-first discovery
// order. Zero results is a normal outcome. ErrResourceExceeded is returned
// when the exploration cap is hit before the search completes, so callers can
// tell a cut-off search apart from an exhausted one.
func (p *Planner) FindJourneys(originStopID string, destinationStopID string, maxTransfers int) ([]transit.Journey, error) {
	if maxTransfers < 0 {
		return nil, fmt.Errorf("max transfers must not be negative, got %d", maxTransfers)
	}

	if !p.graph.HasNode(originStopID) {
		return nil, fmt.Errorf("origin %s: %w", originStopID, ErrStopNotFound)
	}
	if !p.graph.HasNode(destinationStopID) {
		return nil, fmt.Errorf("destination %s: %w", destinationStopID, ErrStopNotFound)
	}

	maxExplored := p.MaxExplored
	if maxExplored <= 0 {
		maxExplored = DefaultMaxExplored
	}

	s := &search{
		graph:       p.graph,
		destination: destinationStopID,
		maxEdges:    maxTransfers + 1,
		onPath:      map[string]bool{originStopID: true},
		maxExplored: maxExplored,
	}

	if err := s.walk(originStopID); err != nil {
		return nil, err
	}

	journeys := make([]transit.Journey, 0, len(s.journeys))
	for _, edges := range s.journeys {
		journeys = append(journeys, p.buildJourney(edges))
	}

	p.logger.Debug().
		Str("origin", originStopID).
		Str("destination", destinationStopID).
		Int("maxtransfers", maxTransfers).
		Int("journeys", len(journeys)).
		Int("explored", s.explored).
		Msg("Journey search complete")

	return journeys, nil
}

func (s *search) walk(stopID string) error {
	s.explored += 1
	if s.explored > s.maxExplored {
		return ErrResourceExceeded
	}

	// One representative edge per distinct next stop. Parallel edges carry
	// alternative trips over the same hop; enumerating every combination
	// would blow up the result set without adding new stop sequences.
	visitedTargets := map[string]bool{}

	for _, edge := range s.graph.OutEdges(stopID) {
		if visitedTargets[edge.ToStopID] || s.onPath[edge.ToStopID] {
			continue
		}
		visitedTargets[edge.ToStopID] = true

		s.path = append(s.path, edge)

		if edge.ToStopID == s.destination {
			journey := make([]*network.Edge, len(s.path))
			copy(journey, s.path)
			s.journeys = append(s.journeys, journey)
		} else if len(s.path) < s.maxEdges {
			s.onPath[edge.ToStopID] = true
			err := s.walk(edge.ToStopID)
			delete(s.onPath, edge.ToStopID)

			if err != nil {
				return err
			}
		}

		s.path = s.path[:len(s.path)-1]
	}

	return nil
}

func (p *Planner) buildJourney(edges []*network.Edge) transit.Journey {
	legs := make([]transit.Leg, 0, len(edges))

	for _, edge := range edges {
		legs = append(legs, transit.Leg{
			FromStopID:    edge.FromStopID,
			FromStopName:  p.index.StopName(edge.FromStopID),
			ToStopID:      edge.ToStopID,
			ToStopName:    p.index.StopName(edge.ToStopID),
			RouteID:       edge.RouteID,
			RouteName:     edge.RouteName,
			RouteLongName: edge.RouteLongName,
			TransportType: edge.TransportType,
		})
	}

	return transit.Journey{
		Legs:      legs,
		Transfers: len(legs) - 1,
	}
}

// DirectConnections lists every parallel edge from origin to destination,
// one entry per trip serving that hop.
func (p *Planner) DirectConnections(originStopID string, destinationStopID string) ([]transit.Leg, error) {
	if !p.graph.HasNode(originStopID) {
		return nil, fmt.Errorf("origin %s: %w", originStopID, ErrStopNotFound)
	}
	if !p.graph.HasNode(destinationStopID) {
		return nil, fmt.Errorf("destination %s: %w", destinationStopID, ErrStopNotFound)
	}

	var legs []transit.Leg
	for _, edge := range p.graph.EdgesBetween(originStopID, destinationStopID) {
		legs = append(legs, transit.Leg{
			FromStopID:    edge.FromStopID,
			FromStopName:  p.index.StopName(edge.FromStopID),
			ToStopID:      edge.ToStopID,
			ToStopName:    p.index.StopName(edge.ToStopID),
			RouteID:       edge.RouteID,
			RouteName:     edge.RouteName,
			RouteLongName: edge.RouteLongName,
			TransportType: edge.TransportType,
		})
	}

	return legs, nil
}
