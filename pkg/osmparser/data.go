package osmparser

import (
	"sort"

	"github.com/paulmach/osm"
)

type NodeCoord struct {
	lat float64
	lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{lat, lon}
}

func (n NodeCoord) GetLat() float64 {
	return n.lat
}

func (n NodeCoord) GetLon() float64 {
	return n.lon
}

// ClassifiedWay is a bikeable way reduced to what the graph builder needs.
type ClassifiedWay struct {
	ID       uint64
	Nodes    []uint64
	Directed bool
}

func NewClassifiedWay(id uint64, nodes []uint64, directed bool) ClassifiedWay {
	return ClassifiedWay{ID: id, Nodes: nodes, Directed: directed}
}

// OsmData holds every node, way and relation of a pbf extract, keyed by id.
type OsmData struct {
	Nodes     map[osm.NodeID]*osm.Node
	Ways      map[osm.WayID]*osm.Way
	Relations map[osm.RelationID]*osm.Relation
}

func NewOsmData() *OsmData {
	return &OsmData{
		Nodes:     make(map[osm.NodeID]*osm.Node),
		Ways:      make(map[osm.WayID]*osm.Way),
		Relations: make(map[osm.RelationID]*osm.Relation),
	}
}

// Add stores o under its id. objects with a negative id are dropped. way ids are not checked
// against the edge id range here, only the bikeable ways reaching the graph builder are.
func (d *OsmData) Add(o osm.Object) {
	switch v := o.(type) {
	case *osm.Node:
		if v.ID >= 0 {
			d.Nodes[v.ID] = v
		}
	case *osm.Way:
		if v.ID >= 0 {
			d.Ways[v.ID] = v
		}
	case *osm.Relation:
		d.Relations[v.ID] = v
	}
}

// ClassifiedWays returns the bikeable ways with at least two members, sorted by way id.
func (d *OsmData) ClassifiedWays(classifier WayClassifier) []ClassifiedWay {
	ways := make([]ClassifiedWay, 0, len(d.Ways)/4)
	for _, way := range d.Ways {
		if len(way.Nodes) < 2 {
			continue
		}
		bikeable, oneway := classifier.Classify(way.Tags)
		if !bikeable {
			continue
		}
		nodes := make([]uint64, 0, len(way.Nodes))
		for _, wn := range way.Nodes {
			nodes = append(nodes, uint64(wn.ID))
		}
		ways = append(ways, NewClassifiedWay(uint64(way.ID), nodes, oneway))
	}
	sort.Slice(ways, func(i, j int) bool {
		return ways[i].ID < ways[j].ID
	})
	return ways
}

func (d *OsmData) NodeCoords() map[uint64]NodeCoord {
	coords := make(map[uint64]NodeCoord, len(d.Nodes))
	for id, n := range d.Nodes {
		coords[uint64(id)] = NewNodeCoord(n.Lat, n.Lon)
	}
	return coords
}

// WayCoords resolves the member coordinates of a way. ok is false if any member node is missing.
func (d *OsmData) WayCoords(way *osm.Way) ([]NodeCoord, bool) {
	coords := make([]NodeCoord, 0, len(way.Nodes))
	for _, wn := range way.Nodes {
		n, ok := d.Nodes[wn.ID]
		if !ok {
			return nil, false
		}
		coords = append(coords, NewNodeCoord(n.Lat, n.Lon))
	}
	return coords, true
}
