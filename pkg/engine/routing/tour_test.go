package routing

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pointGraph(coords map[uint64]geo.Coordinate) *da.Graph {
	g := da.NewGraph()
	for id, c := range coords {
		g.EnsureNode(id, c)
	}
	return g
}

// square of waypoints 1..4 around the center waypoint 5, start 0 south of it
var squareCoords = map[uint64]geo.Coordinate{
	0: geo.NewCoordinate(50.990, 7.010),
	1: geo.NewCoordinate(51.000, 7.000),
	2: geo.NewCoordinate(51.000, 7.020),
	3: geo.NewCoordinate(51.020, 7.020),
	4: geo.NewCoordinate(51.020, 7.000),
	5: geo.NewCoordinate(51.010, 7.010),
}

func TestTourOrdererRing(t *testing.T) {
	o := NewTourOrderer(pointGraph(squareCoords), zap.NewNop(), pkg.DEFAULT_CONCAVITY)

	got := o.Order(0, []uint64{5, 3, 1, 4, 2, 3})

	require.Len(t, got, 4)
	assert.ElementsMatch(t, []uint64{1, 2, 3, 4}, got)
	assert.NotContains(t, got, uint64(5), "center is an inner point")

	// consecutive ring vertices are neighbours on the square
	neighbours := map[uint64][]uint64{1: {2, 4}, 2: {1, 3}, 3: {2, 4}, 4: {1, 3}}
	for i := range got {
		next := got[(i+1)%len(got)]
		assert.Contains(t, neighbours[got[i]], next)
	}
}

func TestTourOrdererFallback(t *testing.T) {
	o := NewTourOrderer(pointGraph(squareCoords), zap.NewNop(), 0)

	testCases := []struct {
		name      string
		start     uint64
		waypoints []uint64
		want      []uint64
	}{
		{name: "two waypoints", start: 0, waypoints: []uint64{3, 1}, want: []uint64{3, 1}},
		{name: "duplicates removed", start: 0, waypoints: []uint64{2, 1, 2}, want: []uint64{2, 1}},
		{name: "unknown ids dropped", start: 0, waypoints: []uint64{4, 99, 2}, want: []uint64{4, 2}},
		{name: "unknown start", start: 99, waypoints: []uint64{1, 2, 3}, want: []uint64{1, 2, 3}},
		{name: "empty", start: 0, waypoints: nil, want: []uint64{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Order(tt.start, tt.waypoints))
		})
	}
}

func TestAssignInner(t *testing.T) {
	o := NewTourOrderer(pointGraph(nil), zap.NewNop(), pkg.DEFAULT_CONCAVITY)
	start := geo.NewCoordinate(51.0, 7.0)

	ids := []uint64{10, 11, 12, 13, 14, 15}
	coords := []geo.Coordinate{
		geo.NewCoordinate(51.002, 7.002), // NE, far
		geo.NewCoordinate(51.001, 7.001), // NE, near
		geo.NewCoordinate(50.999, 6.999), // SW
		geo.NewCoordinate(51.001, 6.999), // NW, near
		geo.NewCoordinate(51.003, 6.997), // NW, far
		geo.NewCoordinate(51.005, 7.005), // NE, on the ring
	}

	before, after := o.assignInner(start, ids, coords, []int{5}, pkg.NORTH_EAST, pkg.NORTH_WEST)

	assert.Equal(t, []uint64{11, 10}, before)
	assert.Equal(t, []uint64{14, 13}, after)
}

func TestSelectSectors(t *testing.T) {
	testCases := []struct {
		name         string
		firstBearing float64
		lastBearing  float64
		wantFirst    pkg.Sector
		wantLast     pkg.Sector
	}{
		{name: "different sectors are kept", firstBearing: 10, lastBearing: 200,
			wantFirst: pkg.NORTH_EAST, wantLast: pkg.SOUTH_WEST},
		{name: "same sector, last turns clockwise", firstBearing: 100, lastBearing: 170,
			wantFirst: pkg.SOUTH_EAST, wantLast: pkg.SOUTH_WEST},
		{name: "same sector, last turns counter-clockwise", firstBearing: 170, lastBearing: 100,
			wantFirst: pkg.SOUTH_EAST, wantLast: pkg.NORTH_EAST},
		{name: "equal bearings turn counter-clockwise", firstBearing: 200, lastBearing: 200,
			wantFirst: pkg.SOUTH_WEST, wantLast: pkg.SOUTH_EAST},
		{name: "clockwise wraps from north west to north east", firstBearing: 280, lastBearing: 350,
			wantFirst: pkg.NORTH_WEST, wantLast: pkg.NORTH_EAST},
		{name: "counter-clockwise wraps from north east to north west", firstBearing: 80, lastBearing: 5,
			wantFirst: pkg.NORTH_EAST, wantLast: pkg.NORTH_WEST},
		{name: "boundary bearings", firstBearing: 0, lastBearing: 90,
			wantFirst: pkg.NORTH_EAST, wantLast: pkg.SOUTH_EAST},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			first, last := selectSectors(tt.firstBearing, tt.lastBearing)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
			assert.NotEqual(t, first, last)
		})
	}
}
