package transit

// Leg is one uninterrupted ride on a single trip between two stops.
type Leg struct {
	FromStopID    string        `json:"from_stop_id"`
	FromStopName  string        `json:"from_stop_name"`
	ToStopID      string        `json:"to_stop_id"`
	ToStopName    string        `json:"to_stop_name"`
	RouteID       string        `json:"route_id"`
	RouteName     string        `json:"route_name"`
	RouteLongName string        `json:"route_long_name"`
	TransportType TransportType `json:"transport_type"`
}

type Journey struct {
	Legs      []Leg `json:"legs"`
	Transfers int   `json:"transfer_count"`
}

// TransportTypes returns the distinct modes used across the journey's legs,
// in first-use order.
func (j *Journey) TransportTypes() []TransportType {
	seen := map[TransportType]bool{}
	var types []TransportType

	for _, leg := range j.Legs {
		if !seen[leg.TransportType] {
			seen[leg.TransportType] = true
			types = append(types, leg.TransportType)
		}
	}

	return types
}
