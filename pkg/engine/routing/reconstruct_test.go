package routing

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var loopCoords = map[uint64]geo.Coordinate{
	0:  geo.NewCoordinate(51.000, 7.000),
	1:  geo.NewCoordinate(51.004, 7.004),
	2:  geo.NewCoordinate(51.008, 7.000),
	10: geo.NewCoordinate(51.002, 7.003),
	11: geo.NewCoordinate(51.006, 7.003),
	12: geo.NewCoordinate(51.002, 7.001),
}

// 0 -> 1 one way with shape point 10, 1 - 2 two way stored as 2..1 with shape point 11,
// 1 -> 0 one way back with shape point 12.
func loopGraph(t *testing.T) *da.Graph {
	return buildTestGraph(t, loopCoords, []testEdge{
		{id: 1, chain: []uint64{0, 10, 1}, directed: true},
		{id: 2, chain: []uint64{2, 11, 1}},
		{id: 3, chain: []uint64{1, 12, 0}, directed: true},
	})
}

func newTestEngine(t *testing.T, g *da.Graph) *RoutingEngine {
	re, err := NewRoutingEngine(g, zap.NewNop(), DEFAULT_LEG_CACHE_SIZE)
	require.NoError(t, err)
	return re
}

func TestReconstructLoop(t *testing.T) {
	re := newTestEngine(t, loopGraph(t))
	rr := NewRouteReconstructor(re, zap.NewNop())

	got := rr.Reconstruct([]uint64{0, 1, 2, 0})

	want := []geo.Coordinate{
		loopCoords[0],
		loopCoords[10], loopCoords[1],
		loopCoords[11], loopCoords[2],
		loopCoords[11], loopCoords[1], loopCoords[12], loopCoords[0],
	}
	assert.Equal(t, want, got)
	assert.Equal(t, got[0], got[len(got)-1])
}

func TestReconstructSkipsUnreachableLeg(t *testing.T) {
	re := newTestEngine(t, loopGraph(t))
	rr := NewRouteReconstructor(re, zap.NewNop())

	got := rr.Reconstruct([]uint64{0, 99, 1})
	assert.Equal(t, []geo.Coordinate{loopCoords[0]}, got)

	assert.Nil(t, rr.Reconstruct(nil))
}

func TestSharedEdgeTieBreak(t *testing.T) {
	coords := map[uint64]geo.Coordinate{
		0:  geo.NewCoordinate(51.000, 7.000),
		1:  geo.NewCoordinate(51.002, 7.000),
		20: geo.NewCoordinate(51.001, 7.0005),
		21: geo.NewCoordinate(51.001, 7.003),
	}
	g := da.NewGraph()
	for id, c := range coords {
		g.EnsureNode(id, c)
	}
	require.NoError(t, g.AddEdge(da.NewEdge(7, []uint64{0, 21, 1}, 500, false)))
	require.NoError(t, g.AddEdge(da.NewEdge(5, []uint64{0, 20, 1}, 230, false)))
	require.NoError(t, g.AddEdge(da.NewEdge(6, []uint64{1, 20, 0}, 230, false)))
	require.NoError(t, g.AddEdge(da.NewEdge(3, []uint64{1, 0}, 100, true)))
	re := newTestEngine(t, g)

	e, ok := re.SharedEdge(0, 1)
	require.True(t, ok)
	assert.Equal(t, uint64(5), e.GetID(), "shortest usable edge, lowest id on ties")

	e, ok = re.SharedEdge(1, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(3), e.GetID())

	_, ok = re.SharedEdge(0, 21)
	assert.False(t, ok, "shape points are not reachable over an edge")
}

func TestRoutingEngineCachesLegs(t *testing.T) {
	re := newTestEngine(t, loopGraph(t))

	path, ok := re.ShortestPath(2, 0)
	require.True(t, ok)
	assert.Equal(t, []uint64{2, 1, 0}, path)
	assert.Equal(t, 1, re.legCache.Len())

	again, ok := re.ShortestPath(2, 0)
	require.True(t, ok)
	assert.Equal(t, path, again)
	assert.Equal(t, 1, re.legCache.Len())

	_, ok = re.ShortestPath(0, 99)
	assert.False(t, ok)
	_, ok = re.ShortestPath(0, 99)
	assert.False(t, ok)
	assert.Equal(t, 2, re.legCache.Len())

	e1, _ := re.GetGraph().GetEdge(2)
	e2, _ := re.GetGraph().GetEdge(3)
	assert.InDelta(t, e1.GetDistance()+e2.GetDistance(), re.PathDistance(path), 1e-9)
}

func TestRoutingEngineWithoutCache(t *testing.T) {
	re, err := NewRoutingEngine(loopGraph(t), zap.NewNop(), 0)
	require.NoError(t, err)

	path, ok := re.ShortestPath(0, 2)
	require.True(t, ok)
	assert.Equal(t, []uint64{0, 1, 2}, path)
}
