package osmparser

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestBikeClassifier(t *testing.T) {
	classifier := NewBikeClassifier()

	testCases := []struct {
		name         string
		tags         osm.Tags
		wantBikeable bool
		wantOneWay   bool
	}{
		{
			name:         "residential",
			tags:         osm.Tags{{Key: "highway", Value: "residential"}},
			wantBikeable: true,
		},
		{
			name:         "oneway cycleway",
			tags:         osm.Tags{{Key: "highway", Value: "cycleway"}, {Key: "oneway", Value: "yes"}},
			wantBikeable: true,
			wantOneWay:   true,
		},
		{
			name:         "oneway numeric",
			tags:         osm.Tags{{Key: "highway", Value: "service"}, {Key: "oneway", Value: "1"}},
			wantBikeable: true,
			wantOneWay:   true,
		},
		{
			name:         "reversed oneway is not directed",
			tags:         osm.Tags{{Key: "highway", Value: "service"}, {Key: "oneway", Value: "-1"}},
			wantBikeable: true,
		},
		{
			name: "motorway",
			tags: osm.Tags{{Key: "highway", Value: "motorway"}},
		},
		{
			name: "building outline",
			tags: osm.Tags{{Key: "building", Value: "yes"}},
		},
		{
			name: "primary with sidepath",
			tags: osm.Tags{{Key: "highway", Value: "primary"}, {Key: "bicycle", Value: "use_sidepath"}},
		},
		{
			name:       "private access",
			tags:       osm.Tags{{Key: "highway", Value: "service"}, {Key: "access", Value: "private"}, {Key: "oneway", Value: "yes"}},
			wantOneWay: true,
		},
		{
			name: "grade5 track",
			tags: osm.Tags{{Key: "highway", Value: "track"}, {Key: "tracktype", Value: "grade5"}},
		},
		{
			name: "horrible smoothness",
			tags: osm.Tags{{Key: "highway", Value: "path"}, {Key: "smoothness", Value: "horrible"}},
		},
		{
			name: "sand surface",
			tags: osm.Tags{{Key: "highway", Value: "path"}, {Key: "surface", Value: "sand"}},
		},
		{
			name: "motorroad",
			tags: osm.Tags{{Key: "highway", Value: "secondary"}, {Key: "motorroad", Value: "yes"}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			bikeable, oneway := classifier.Classify(tt.tags)
			assert.Equal(t, tt.wantBikeable, bikeable)
			assert.Equal(t, tt.wantOneWay, oneway)
		})
	}
}

func TestClassifiedWaysSortedAndFiltered(t *testing.T) {
	data := NewOsmData()
	data.Ways[30] = &osm.Way{ID: 30, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
		Tags: osm.Tags{{Key: "highway", Value: "residential"}}}
	data.Ways[10] = &osm.Way{ID: 10, Nodes: osm.WayNodes{{ID: 2}, {ID: 3}},
		Tags: osm.Tags{{Key: "highway", Value: "cycleway"}, {Key: "oneway", Value: "yes"}}}
	data.Ways[20] = &osm.Way{ID: 20, Nodes: osm.WayNodes{{ID: 3}, {ID: 4}},
		Tags: osm.Tags{{Key: "highway", Value: "motorway"}}}
	data.Ways[40] = &osm.Way{ID: 40, Nodes: osm.WayNodes{{ID: 5}},
		Tags: osm.Tags{{Key: "highway", Value: "residential"}}}

	got := data.ClassifiedWays(NewBikeClassifier())

	assert.Equal(t, []ClassifiedWay{
		NewClassifiedWay(10, []uint64{2, 3}, true),
		NewClassifiedWay(30, []uint64{1, 2}, false),
	}, got)
}

func TestWayCoords(t *testing.T) {
	data := NewOsmData()
	data.Nodes[1] = &osm.Node{ID: 1, Lat: 51.0, Lon: 7.0}
	data.Nodes[2] = &osm.Node{ID: 2, Lat: 51.1, Lon: 7.1}
	way := &osm.Way{ID: 1, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}}}

	coords, ok := data.WayCoords(way)
	assert.True(t, ok)
	assert.Equal(t, []NodeCoord{NewNodeCoord(51.0, 7.0), NewNodeCoord(51.1, 7.1)}, coords)

	way.Nodes = append(way.Nodes, osm.WayNode{ID: 3})
	_, ok = data.WayCoords(way)
	assert.False(t, ok)

	assert.Len(t, data.NodeCoords(), 2)
}
