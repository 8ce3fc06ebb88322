package pkg

// enum of transport mode
type TransportType uint8

const (
	METRO TransportType = iota
	BUS
	TRAIN
	UNKNOWN_TRANSPORT
)

const (
	INF_WEIGHT     float64 = 1e15
	INF_WEIGHT_INT         = 1e15

	METRO_MULTIPLIER_DEFAULT = 1.0
	BUS_MULTIPLIER_DEFAULT   = 1.5
	TRAIN_MULTIPLIER_DEFAULT = 1.2

	// default timetable synthesis window
	TIMETABLE_START_HOUR    = 5
	TIMETABLE_END_HOUR      = 23
	TIMETABLE_FREQUENCY_MIN = 15

	// capacity assigned to stations imported from sources that carry none
	// (gtfs feeds, osm)
	DEFAULT_STATION_CAPACITY int32 = 100
)

const (
	DEBUG = false
)

// transport mode names as they appear in the public api and in snapshots
const (
	METRO_NAME = "Metro"
	BUS_NAME   = "Bus"
	TRAIN_NAME = "Train"
)

func GetTransportType(transportMode string) TransportType {
	switch transportMode {
	case METRO_NAME, "metro", "subway":
		return METRO
	case BUS_NAME, "bus", "trolleybus":
		return BUS
	case TRAIN_NAME, "train", "rail", "railway":
		return TRAIN
	default:
		return UNKNOWN_TRANSPORT
	}
}

func (t TransportType) String() string {
	switch t {
	case METRO:
		return METRO_NAME
	case BUS:
		return BUS_NAME
	case TRAIN:
		return TRAIN_NAME
	default:
		return "Unknown"
	}
}

func TransportTypes() []TransportType {
	return []TransportType{METRO, BUS, TRAIN}
}
