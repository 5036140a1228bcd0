package network

import (
	"sort"

	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BuildGraph constructs the connectivity graph from an index snapshot.
//
// Every known stop becomes a node, including stops no trip serves. Each trip
// contributes one directed edge per consecutive pair of its stop visits,
// ordered by sequence number. A trip whose route cannot be resolved is
// skipped whole and counted, never fatal. Trips and sequences are walked in
// sorted order so edge insertion order is reproducible across runs.
func BuildGraph(index *transit.Index, logger zerolog.Logger) *Graph {
	graph := NewGraph()

	for _, stop := range index.Stops() {
		graph.AddNode(stop.ID)
	}

	tripStopSequenceMap := map[string]map[int]transit.StopVisit{}
	for _, visit := range index.StopVisits() {
		if _, exists := tripStopSequenceMap[visit.TripID]; !exists {
			tripStopSequenceMap[visit.TripID] = map[int]transit.StopVisit{}
		}
		tripStopSequenceMap[visit.TripID][visit.Sequence] = visit
	}

	tripIDs := maps.Keys(tripStopSequenceMap)
	slices.Sort(tripIDs)

	for _, tripID := range tripIDs {
		route, resolved := index.RouteForTrip(tripID)
		if !resolved {
			graph.skippedTrips += 1
			logger.Debug().Str("trip", tripID).Msg("Trip has no resolvable route, skipping")
			continue
		}

		tripSequenceMap := tripStopSequenceMap[tripID]
		sequenceIDs := maps.Keys(tripSequenceMap)
		sort.Ints(sequenceIDs)

		for i := 1; i < len(sequenceIDs); i += 1 {
			visit := tripSequenceMap[sequenceIDs[i]]
			previousVisit := tripSequenceMap[sequenceIDs[i-1]]

			graph.AddEdge(&Edge{
				FromStopID: previousVisit.StopID,
				ToStopID:   visit.StopID,

				TripID:        tripID,
				RouteID:       route.ID,
				RouteName:     route.ShortName,
				RouteLongName: route.LongName,
				TransportType: route.TransportType,
			})
		}
	}

	logger.Info().
		Int("nodes", graph.NodeCount()).
		Int("edges", graph.EdgeCount()).
		Int("skippedtrips", graph.SkippedTrips()).
		Msg("Built network graph")

	return graph
}
