package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ovplanner/ovplanner/pkg/planner"
	"github.com/ovplanner/ovplanner/pkg/transit"
)

func TestFormatJourney(t *testing.T) {
	journey := transit.Journey{
		Legs: []transit.Leg{
			{
				FromStopName:  "Amsterdam Noorderpark",
				ToStopName:    "Amsterdam Centraal",
				RouteName:     "52",
				TransportType: transit.TransportTypeMetro,
			},
			{
				FromStopName:  "Amsterdam Centraal",
				ToStopName:    "Amsterdam Zuid",
				RouteName:     "52",
				TransportType: transit.TransportTypeMetro,
			},
		},
		Transfers: 1,
	}

	output := planner.FormatJourney(journey, 1)

	assert.Contains(t, output, "Journey Option 1:")
	assert.Contains(t, output, "Transfers: 1")
	assert.Contains(t, output, "Leg 2:")
	assert.Contains(t, output, "Route: 52 (Metro)")
	assert.Contains(t, output, "From: Amsterdam Centraal")
}
