package planner

import (
	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/ovplanner/ovplanner/pkg/util"
	"golang.org/x/exp/slices"
)

// LegPredicate decides whether a single leg is acceptable.
type LegPredicate func(transit.Leg) bool

// ModeOnly accepts legs travelled on the given transport mode.
func ModeOnly(transportType transit.TransportType) LegPredicate {
	return func(leg transit.Leg) bool {
		return leg.TransportType == transportType
	}
}

// FilterJourneys returns the journeys whose every leg satisfies the
// predicate, preserving input order. The input slice is left untouched.
func FilterJourneys(journeys []transit.Journey, predicate LegPredicate) []transit.Journey {
	filtered := slices.Clone(journeys)

	util.InPlaceFilter(&filtered, func(journey transit.Journey) bool {
		for _, leg := range journey.Legs {
			if !predicate(leg) {
				return false
			}
		}

		return true
	})

	return filtered
}
