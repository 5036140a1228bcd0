package transit

import (
	"github.com/ovplanner/ovplanner/pkg/gtfs"
)

// Index is the read-only lookup layer over a loaded schedule. It is built
// once per dataset and never mutated afterwards, so it is safe to share
// between concurrent readers.
type Index struct {
	stops     map[string]*Stop
	stopOrder []*Stop

	routes map[string]*Route
	trips  map[string]*Trip

	visits []StopVisit
}

func NewIndex(schedule *gtfs.Schedule) *Index {
	index := &Index{
		stops:  map[string]*Stop{},
		routes: map[string]*Route{},
		trips:  map[string]*Trip{},
	}

	for _, gtfsStop := range schedule.Stops {
		stop := &Stop{
			ID:        gtfsStop.ID,
			Name:      gtfsStop.Name,
			Latitude:  gtfsStop.Latitude,
			Longitude: gtfsStop.Longitude,
		}

		index.stops[stop.ID] = stop
		index.stopOrder = append(index.stopOrder, stop)
	}

	for _, gtfsRoute := range schedule.Routes {
		route := &Route{
			ID:            gtfsRoute.ID,
			ShortName:     gtfsRoute.ShortName,
			LongName:      gtfsRoute.LongName,
			TransportType: TransportType(gtfsRoute.Type),
		}

		if route.ShortName == "" {
			route.ShortName = RouteNamePlaceholder
		}
		if route.LongName == "" {
			route.LongName = RouteNamePlaceholder
		}

		index.routes[route.ID] = route
	}

	for _, gtfsTrip := range schedule.Trips {
		index.trips[gtfsTrip.ID] = &Trip{
			ID:      gtfsTrip.ID,
			RouteID: gtfsTrip.RouteID,
		}
	}

	for _, stopTime := range schedule.StopTimes {
		index.visits = append(index.visits, StopVisit{
			TripID:   stopTime.TripID,
			StopID:   stopTime.StopID,
			Sequence: stopTime.StopSequence,
		})
	}

	return index
}

func (index *Index) Stop(id string) *Stop {
	return index.stops[id]
}

// Stops returns every stop in original table order.
func (index *Index) Stops() []*Stop {
	return index.stopOrder
}

func (index *Index) Route(id string) *Route {
	return index.routes[id]
}

func (index *Index) Trip(id string) *Trip {
	return index.trips[id]
}

// RouteForTrip resolves a trip to its owning route. The second return is
// false when the trip is unknown or dangles on a missing route.
func (index *Index) RouteForTrip(tripID string) (*Route, bool) {
	trip, exists := index.trips[tripID]
	if !exists {
		return nil, false
	}

	route, exists := index.routes[trip.RouteID]
	return route, exists
}

// StopVisits returns every stop visit row, in original table order.
func (index *Index) StopVisits() []StopVisit {
	return index.visits
}

// StopName resolves a stop ID to its display name, falling back to the ID
// for stops the feed never declared.
func (index *Index) StopName(id string) string {
	if stop, exists := index.stops[id]; exists {
		return stop.Name
	}

	return id
}

// TransportTypeSummary counts routes per transport mode.
func (index *Index) TransportTypeSummary() map[TransportType]int {
	summary := map[TransportType]int{}

	for _, route := range index.routes {
		summary[route.TransportType] += 1
	}

	return summary
}
