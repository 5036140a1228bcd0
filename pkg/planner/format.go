package planner

import (
	"fmt"
	"strings"

	"github.com/ovplanner/ovplanner/pkg/transit"
)

// FormatJourney renders one journey option for console output.
func FormatJourney(journey transit.Journey, index int) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Journey Option %d:\n", index)
	fmt.Fprintf(&builder, "  Transfers: %d\n", journey.Transfers)

	for i, leg := range journey.Legs {
		fmt.Fprintf(&builder, "\n  Leg %d:\n", i+1)
		fmt.Fprintf(&builder, "    Route: %s (%s)\n", leg.RouteName, leg.TransportType)
		fmt.Fprintf(&builder, "    From: %s\n", leg.FromStopName)
		fmt.Fprintf(&builder, "    To:   %s\n", leg.ToStopName)
	}

	return builder.String()
}
