// Package network builds the directed connectivity multigraph of a loaded
// timetable: one node per stop, one edge per consecutive stop pair of a trip.
package network

import (
	"github.com/ovplanner/ovplanner/pkg/transit"
)

// Edge is one hop of one trip. Parallel edges between the same stop pair are
// kept, one per trip, so no route metadata is lost.
type Edge struct {
	FromStopID string
	ToStopID   string

	TripID        string
	RouteID       string
	RouteName     string
	RouteLongName string
	TransportType transit.TransportType
}

type Graph struct {
	nodes map[string]bool
	out   map[string][]*Edge

	edgeCount    int
	skippedTrips int
}

func NewGraph() *Graph {
	return &Graph{
		nodes: map[string]bool{},
		out:   map[string][]*Edge{},
	}
}

func (graph *Graph) AddNode(stopID string) {
	graph.nodes[stopID] = true
}

func (graph *Graph) AddEdge(edge *Edge) {
	graph.nodes[edge.FromStopID] = true
	graph.nodes[edge.ToStopID] = true

	graph.out[edge.FromStopID] = append(graph.out[edge.FromStopID], edge)
	graph.edgeCount += 1
}

func (graph *Graph) HasNode(stopID string) bool {
	return graph.nodes[stopID]
}

// OutEdges returns the outgoing edges of a stop in insertion order. The
// returned slice is shared and must not be modified.
func (graph *Graph) OutEdges(stopID string) []*Edge {
	return graph.out[stopID]
}

// EdgesBetween returns every parallel edge from one stop to another, in
// insertion order.
func (graph *Graph) EdgesBetween(fromStopID string, toStopID string) []*Edge {
	var edges []*Edge

	for _, edge := range graph.out[fromStopID] {
		if edge.ToStopID == toStopID {
			edges = append(edges, edge)
		}
	}

	return edges
}

func (graph *Graph) NodeCount() int {
	return len(graph.nodes)
}

func (graph *Graph) EdgeCount() int {
	return graph.edgeCount
}

// SkippedTrips is the number of trips excluded from the build because their
// route could not be resolved.
func (graph *Graph) SkippedTrips() int {
	return graph.skippedTrips
}
