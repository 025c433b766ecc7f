package routing

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	id       uint64
	chain    []uint64
	directed bool
}

func buildTestGraph(t *testing.T, coords map[uint64]geo.Coordinate, edges []testEdge) *da.Graph {
	g := da.NewGraph()
	for id, c := range coords {
		g.EnsureNode(id, c)
	}
	for _, e := range edges {
		chainCoords := make([]geo.Coordinate, 0, len(e.chain))
		for _, n := range e.chain {
			chainCoords = append(chainCoords, coords[n])
		}
		require.NoError(t, g.AddEdge(da.NewEdge(e.id, e.chain, geo.PolylineLength(chainCoords), e.directed)))
	}
	return g
}

/*
grid of 9 intersections, 0.002 degree apart:

	7 -- 8    6
	|         |
	3 -- 4 -- 5
	|       / |
	0 -- 1 -- 2

one ways: 2->5, 5->4 and the diagonal 5->1. the diagonal is the shortest way from 0 towards 6
but only usable from 5.
*/
func nineNodeGraph(t *testing.T) *da.Graph {
	coords := map[uint64]geo.Coordinate{
		0: geo.NewCoordinate(51.000, 7.000),
		1: geo.NewCoordinate(51.000, 7.002),
		2: geo.NewCoordinate(51.000, 7.004),
		3: geo.NewCoordinate(51.002, 7.000),
		4: geo.NewCoordinate(51.002, 7.002),
		5: geo.NewCoordinate(51.002, 7.004),
		6: geo.NewCoordinate(51.004, 7.004),
		7: geo.NewCoordinate(51.004, 7.000),
		8: geo.NewCoordinate(51.004, 7.002),
	}
	edges := []testEdge{
		{id: 1, chain: []uint64{0, 1}},
		{id: 2, chain: []uint64{2, 1}},
		{id: 3, chain: []uint64{2, 5}, directed: true},
		{id: 4, chain: []uint64{5, 6}},
		{id: 5, chain: []uint64{0, 3}},
		{id: 6, chain: []uint64{3, 4}},
		{id: 7, chain: []uint64{5, 4}, directed: true},
		{id: 8, chain: []uint64{5, 1}, directed: true},
		{id: 9, chain: []uint64{3, 7}},
		{id: 10, chain: []uint64{7, 8}},
	}
	return buildTestGraph(t, coords, edges)
}

func TestAStarNineNodes(t *testing.T) {
	g := nineNodeGraph(t)
	require.Equal(t, 9, g.NumberOfNodes())
	require.Equal(t, 10, g.NumberOfEdges())

	testCases := []struct {
		name   string
		s, t   uint64
		want   []uint64
		wantOk bool
	}{
		{name: "0 to 6 respects one ways", s: 0, t: 6, want: []uint64{0, 1, 2, 5, 6}, wantOk: true},
		{name: "6 to 0 takes the diagonal", s: 6, t: 0, want: []uint64{6, 5, 1, 0}, wantOk: true},
		{name: "4 to 5 only around", s: 4, t: 5, want: []uint64{4, 3, 0, 1, 2, 5}, wantOk: true},
		{name: "dead end 8 to 7", s: 8, t: 7, want: []uint64{8, 7}, wantOk: true},
		{name: "same node", s: 3, t: 3, want: []uint64{3}, wantOk: true},
		{name: "unknown target", s: 0, t: 99, want: nil, wantOk: false},
		{name: "unknown source", s: 99, t: 0, want: nil, wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			as := NewAStar(g)
			got, ok := as.ShortestPath(tt.s, tt.t)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAStarDisconnectedDirectedComponents(t *testing.T) {
	coords := map[uint64]geo.Coordinate{
		10: geo.NewCoordinate(51.000, 7.000),
		11: geo.NewCoordinate(51.001, 7.000),
		12: geo.NewCoordinate(51.002, 7.000),
		20: geo.NewCoordinate(51.000, 7.010),
		21: geo.NewCoordinate(51.001, 7.010),
	}
	edges := []testEdge{
		{id: 1, chain: []uint64{10, 11}, directed: true},
		{id: 2, chain: []uint64{11, 12}, directed: true},
		{id: 3, chain: []uint64{20, 21}, directed: true},
	}
	g := buildTestGraph(t, coords, edges)
	as := NewAStar(g)

	_, ok := as.ShortestPath(10, 20)
	assert.False(t, ok)
	assert.Equal(t, 3, as.GetNumSettledNodes(), "the whole component of 10 is searched")
	_, ok = as.ShortestPath(20, 10)
	assert.False(t, ok)

	_, ok = as.ShortestPath(12, 10)
	assert.False(t, ok, "against the one way")

	path, ok := as.ShortestPath(10, 12)
	assert.True(t, ok)
	assert.Equal(t, []uint64{10, 11, 12}, path)
}

func TestAStarIgnoresShapePoints(t *testing.T) {
	coords := map[uint64]geo.Coordinate{
		1: geo.NewCoordinate(51.000, 7.000),
		2: geo.NewCoordinate(51.001, 7.000),
		3: geo.NewCoordinate(51.002, 7.000),
	}
	g := buildTestGraph(t, coords, []testEdge{{id: 1, chain: []uint64{1, 2, 3}}})
	as := NewAStar(g)

	path, ok := as.ShortestPath(1, 3)
	assert.True(t, ok)
	assert.Equal(t, []uint64{1, 3}, path)

	_, ok = as.ShortestPath(2, 3)
	assert.False(t, ok)
}
