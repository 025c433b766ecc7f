package pkg

const (
	// way ids keep the low 53 bits of an edge id, the chunk index the high 11 bits.
	WAY_ID_BITS                    = 53
	CHUNK_INDEX_BITS               = 11
	MAX_WAY_ID              uint64 = 1<<WAY_ID_BITS - 1
	MAX_CHUNK_INDEX         uint64 = 1<<CHUNK_INDEX_BITS - 1

	DEFAULT_CONCAVITY = 2.0

	// roundtrip acceptance
	MIN_DISTINCT_RATIO       = 0.75
	LENGTH_TOLERANCE         = 0.10
	DEFAULT_MAX_ITERATIONS   = 500
	WAYPOINTS_PER_RADIUS_M   = 0.005
	RADIUS_DIVISOR           = 6.28
	MIN_INTERESTING_AREA_SQM = 100.0

	DEFAULT_OUTPUT_PATH = "/tmp/result.gpx"
	GPX_CREATOR         = "navigatorx-roundtrip"
	GPX_ROUTE_NAME      = "roundtrip"
)

// Sector is a 90 degree wide compass sector measured clockwise from north.
type Sector uint8

const (
	NORTH_EAST Sector = iota // [0,90)
	SOUTH_EAST               // [90,180)
	SOUTH_WEST               // [180,270)
	NORTH_WEST               // [270,360)
)

func SectorOf(bearing float64) Sector {
	switch {
	case bearing >= 0 && bearing < 90:
		return NORTH_EAST
	case bearing >= 90 && bearing < 180:
		return SOUTH_EAST
	case bearing >= 180 && bearing < 270:
		return SOUTH_WEST
	default:
		return NORTH_WEST
	}
}

// Clockwise returns the next sector when rotating clockwise.
func (s Sector) Clockwise() Sector {
	return (s + 1) % 4
}

// CounterClockwise returns the previous sector when rotating counter-clockwise.
func (s Sector) CounterClockwise() Sector {
	return (s + 3) % 4
}

func (s Sector) String() string {
	switch s {
	case NORTH_EAST:
		return "NE"
	case SOUTH_EAST:
		return "SE"
	case SOUTH_WEST:
		return "SW"
	default:
		return "NW"
	}
}
