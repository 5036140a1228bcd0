package transit

import (
	"fmt"
	"strconv"
	"strings"
)

// TransportType is the GTFS route_type code. Codes outside the base
// enumeration are kept as-is and rendered as Unknown.
type TransportType int

const (
	TransportTypeTram      TransportType = 0
	TransportTypeMetro     TransportType = 1
	TransportTypeRail      TransportType = 2
	TransportTypeBus       TransportType = 3
	TransportTypeFerry     TransportType = 4
	TransportTypeCableCar  TransportType = 5
	TransportTypeGondola   TransportType = 6
	TransportTypeFunicular TransportType = 7
)

var transportTypeNames = map[TransportType]string{
	TransportTypeTram:      "Tram",
	TransportTypeMetro:     "Metro",
	TransportTypeRail:      "Rail",
	TransportTypeBus:       "Bus",
	TransportTypeFerry:     "Ferry",
	TransportTypeCableCar:  "Cable Car",
	TransportTypeGondola:   "Gondola",
	TransportTypeFunicular: "Funicular",
}

func (t TransportType) String() string {
	if name, exists := transportTypeNames[t]; exists {
		return name
	}

	return fmt.Sprintf("Unknown (%d)", int(t))
}

// ParseTransportType accepts either a mode name (case insensitive, eg.
// "metro") or a raw numeric route_type code.
func ParseTransportType(value string) (TransportType, error) {
	for transportType, name := range transportTypeNames {
		if strings.EqualFold(name, value) {
			return transportType, nil
		}
	}

	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("unrecognised transport type %q", value)
	}

	return TransportType(code), nil
}
