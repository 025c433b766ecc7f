package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildGraph(t *testing.T) *datastructure.Graph {
	g := datastructure.NewGraph()
	g.EnsureNode(1, geo.NewCoordinate(51.000, 7.000))
	g.EnsureNode(2, geo.NewCoordinate(51.010, 7.000))
	g.EnsureNode(3, geo.NewCoordinate(51.010, 7.020))
	// interior shape point right next to the query in TestNearestIgnoresShapePoints
	g.EnsureNode(4, geo.NewCoordinate(51.005, 7.010))
	require.NoError(t, g.AddEdge(datastructure.NewEdge(10, []uint64{1, 2}, 1100, false)))
	require.NoError(t, g.AddEdge(datastructure.NewEdge(20, []uint64{2, 3}, 1400, false)))
	require.NoError(t, g.AddEdge(datastructure.NewEdge(30, []uint64{3, 4, 1}, 1800, false)))
	return g
}

func TestRtreeBuild(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildGraph(t), zap.NewNop())

	assert.Equal(t, 3, rt.Size())
	assert.ElementsMatch(t, []uint64{1}, rt.SearchWithinRadius(51.0, 7.0, 0.1))
	assert.ElementsMatch(t, []uint64{1, 2, 3}, rt.SearchWithinRadius(51.005, 7.01, 5))
}

func TestNearest(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildGraph(t), zap.NewNop())

	testCases := []struct {
		name string
		q    geo.Coordinate
		want uint64
	}{
		{name: "on top of a node", q: geo.NewCoordinate(51.010, 7.000), want: 2},
		{name: "close to node 3", q: geo.NewCoordinate(51.011, 7.019), want: 3},
		{name: "far away", q: geo.NewCoordinate(40.0, 7.0), want: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rt.Nearest(tt.q)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearestIgnoresShapePoints(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildGraph(t), zap.NewNop())

	got, ok := rt.Nearest(geo.NewCoordinate(51.0051, 7.0101))
	require.True(t, ok)
	assert.NotEqual(t, uint64(4), got)
}

func TestNearestPrefersCloserOutsideFirstBox(t *testing.T) {
	rt := NewRtree()
	// a is inside the diagonal box but further away than b, which lies straight north
	rt.Insert(1, geo.NewCoordinate(51.0006, 7.0009))
	rt.Insert(2, geo.NewCoordinate(51.0007, 7.0))

	got, ok := rt.Nearest(geo.NewCoordinate(51.0, 7.0))
	require.True(t, ok)
	assert.Equal(t, uint64(2), got)
}

func TestNearestEmpty(t *testing.T) {
	_, ok := NewRtree().Nearest(geo.NewCoordinate(51, 7))
	assert.False(t, ok)
}

func TestSnapDedupes(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildGraph(t), zap.NewNop())

	got := rt.Snap([]geo.Coordinate{
		geo.NewCoordinate(51.0101, 7.0201),
		geo.NewCoordinate(51.0001, 7.0001),
		geo.NewCoordinate(51.0102, 7.0199),
	})
	assert.Equal(t, []uint64{3, 1}, got)
}
