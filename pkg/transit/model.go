package transit

// RouteNamePlaceholder is used where a GTFS route omits one of its display
// names. It is a display value, never a key.
const RouteNamePlaceholder = "N/A"

type Stop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type Route struct {
	ID            string        `json:"id"`
	ShortName     string        `json:"short_name"`
	LongName      string        `json:"long_name"`
	TransportType TransportType `json:"transport_type"`
}

// DisplayName prefers the short name, matching how routes are shown on
// vehicles and stop flags.
func (r *Route) DisplayName() string {
	if r.ShortName != RouteNamePlaceholder {
		return r.ShortName
	}

	return r.LongName
}

type Trip struct {
	ID      string `json:"id"`
	RouteID string `json:"route_id"`
}

// StopVisit is one row of a trip's serving order. Sequence values are only
// meaningful relative to other visits of the same trip.
type StopVisit struct {
	TripID   string `json:"trip_id"`
	StopID   string `json:"stop_id"`
	Sequence int    `json:"sequence"`
}

// StopMatch is a fuzzy name search result.
type StopMatch struct {
	Stop  *Stop `json:"stop"`
	Score int   `json:"score"`
}
