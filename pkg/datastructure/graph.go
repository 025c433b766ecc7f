package datastructure

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
)

var (
	ErrWayIDOutOfRange = errors.New("way id does not fit in 53 bits")
	ErrTooManyChunks   = errors.New("way has more than 2048 chunks")
)

// NewEdgeID packs the source way id (low 53 bits) and the chunk index of the edge within that way (high 11 bits).
func NewEdgeID(wayID uint64, chunkIndex int) (uint64, error) {
	if wayID > pkg.MAX_WAY_ID {
		return 0, util.WrapErrorf(nil, ErrWayIDOutOfRange, "way %d: way id does not fit in %d bits", wayID, pkg.WAY_ID_BITS)
	}
	if chunkIndex < 0 || uint64(chunkIndex) > pkg.MAX_CHUNK_INDEX {
		return 0, util.WrapErrorf(nil, ErrTooManyChunks, "way %d: chunk index %d out of range", wayID, chunkIndex)
	}
	return uint64(chunkIndex)<<pkg.WAY_ID_BITS | wayID, nil
}

func WayIDOf(edgeID uint64) uint64 {
	return edgeID & pkg.MAX_WAY_ID
}

func ChunkIndexOf(edgeID uint64) int {
	return int(edgeID >> pkg.WAY_ID_BITS)
}

type Node struct {
	id    uint64
	coord geo.Coordinate
	edges []uint64 // incident edges, in discovery order
	// 0 (industrial zone / unrated) till 255 (best surroundings). reserved, not used for routing yet.
	desirability uint8
}

func NewNode(id uint64, coord geo.Coordinate) *Node {
	return &Node{
		id:    id,
		coord: coord,
		edges: make([]uint64, 0, 2),
	}
}

func (n *Node) GetID() uint64 {
	return n.id
}

func (n *Node) GetCoordinate() geo.Coordinate {
	return n.coord
}

func (n *Node) GetLat() float64 {
	return n.coord.Lat
}

func (n *Node) GetLon() float64 {
	return n.coord.Lon
}

func (n *Node) GetEdges() []uint64 {
	return n.edges
}

func (n *Node) GetDesirability() uint8 {
	return n.desirability
}

func (n *Node) attachEdge(edgeID uint64) {
	if slices.Contains(n.edges, edgeID) {
		return
	}
	n.edges = append(n.edges, edgeID)
}

// Edge is a chain of node ids between two intersections. s = chain[0], t = chain[len(chain)-1].
type Edge struct {
	id       uint64
	chain    []uint64
	distance float64 // meter
	directed bool    // if true only s->t is allowed
}

func NewEdge(id uint64, chain []uint64, distance float64, directed bool) *Edge {
	return &Edge{
		id:       id,
		chain:    chain,
		distance: distance,
		directed: directed,
	}
}

func (e *Edge) GetID() uint64 {
	return e.id
}

func (e *Edge) GetChain() []uint64 {
	return e.chain
}

func (e *Edge) GetS() uint64 {
	return e.chain[0]
}

func (e *Edge) GetT() uint64 {
	return e.chain[len(e.chain)-1]
}

func (e *Edge) GetDistance() float64 {
	return e.distance
}

func (e *Edge) IsDirected() bool {
	return e.directed
}

func (e *Edge) GetWayID() uint64 {
	return WayIDOf(e.id)
}

// Other returns the endpoint opposite to n. ok is false if n is not an endpoint of e.
func (e *Edge) Other(n uint64) (uint64, bool) {
	switch n {
	case e.GetS():
		return e.GetT(), true
	case e.GetT():
		return e.GetS(), true
	default:
		return 0, false
	}
}

// TraversableFrom reports whether e can be entered at endpoint n.
func (e *Edge) TraversableFrom(n uint64) bool {
	if n != e.GetS() && n != e.GetT() {
		return false
	}
	return !e.directed || n != e.GetT()
}

// PositionOf returns the index of n in the chain or -1.
func (e *Edge) PositionOf(n uint64) int {
	return slices.Index(e.chain, n)
}

// Graph owns every node and edge. all cross references are id lookups.
type Graph struct {
	nodes map[uint64]*Node
	edges map[uint64]*Edge
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[uint64]*Node),
		edges: make(map[uint64]*Edge),
	}
}

// EnsureNode returns the node with id, creating it at coord on first sight.
func (g *Graph) EnsureNode(id uint64, coord geo.Coordinate) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := NewNode(id, coord)
	g.nodes[id] = n
	return n
}

// AddEdge stores e and registers it at every node of its chain. all chain nodes must exist.
func (g *Graph) AddEdge(e *Edge) error {
	for _, nodeID := range e.chain {
		if _, ok := g.nodes[nodeID]; !ok {
			return util.WrapErrorf(nil, util.ErrNotFound, "edge %d references unknown node %d", e.id, nodeID)
		}
	}
	g.edges[e.id] = e
	for _, nodeID := range e.chain {
		g.nodes[nodeID].attachEdge(e.id)
	}
	return nil
}

func (g *Graph) GetNode(id uint64) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) GetEdge(id uint64) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

func (g *Graph) GetNodes() map[uint64]*Node {
	return g.nodes
}

func (g *Graph) GetEdges() map[uint64]*Edge {
	return g.edges
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetCoordinate(id uint64) (geo.Coordinate, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return geo.Coordinate{}, false
	}
	return n.coord, true
}

// IsIntersection reports whether id terminates at least one edge.
func (g *Graph) IsIntersection(id uint64) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	for _, edgeID := range n.edges {
		e := g.edges[edgeID]
		if e.GetS() == id || e.GetT() == id {
			return true
		}
	}
	return false
}

// Intersections returns all intersection node ids in ascending order.
func (g *Graph) Intersections() []uint64 {
	ids := make([]uint64, 0, len(g.nodes)/4)
	for id := range g.nodes {
		if g.IsIntersection(id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// SharedEdges returns the ids of all edges incident to both u and v in ascending order.
func (g *Graph) SharedEdges(u, v uint64) []uint64 {
	nu, ok := g.nodes[u]
	if !ok {
		return nil
	}
	nv, ok := g.nodes[v]
	if !ok {
		return nil
	}
	shared := make([]uint64, 0, 1)
	for _, edgeID := range nu.edges {
		if slices.Contains(nv.edges, edgeID) {
			shared = append(shared, edgeID)
		}
	}
	slices.Sort(shared)
	return shared
}

// BoundingBox of all nodes, nil for an empty graph.
func (g *Graph) BoundingBox() *BoundingBox {
	if len(g.nodes) == 0 {
		return nil
	}
	first := true
	var minLat, minLon, maxLat, maxLon float64
	for _, n := range g.nodes {
		if first {
			minLat, maxLat, minLon, maxLon = n.coord.Lat, n.coord.Lat, n.coord.Lon, n.coord.Lon
			first = false
			continue
		}
		minLat = min(minLat, n.coord.Lat)
		maxLat = max(maxLat, n.coord.Lat)
		minLon = min(minLon, n.coord.Lon)
		maxLon = max(maxLon, n.coord.Lon)
	}
	return NewBoundingBox(minLat, minLon, maxLat, maxLon)
}

// Validate checks that every chain node exists and every incident edge list only names edges
// whose chain contains the node.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if len(e.chain) < 2 {
			return fmt.Errorf("edge %d has a chain of %d nodes", e.id, len(e.chain))
		}
		for _, nodeID := range e.chain {
			if _, ok := g.nodes[nodeID]; !ok {
				return fmt.Errorf("edge %d references unknown node %d", e.id, nodeID)
			}
		}
	}
	for _, n := range g.nodes {
		for _, edgeID := range n.edges {
			e, ok := g.edges[edgeID]
			if !ok {
				return fmt.Errorf("node %d references unknown edge %d", n.id, edgeID)
			}
			if e.PositionOf(n.id) == -1 {
				return fmt.Errorf("node %d lists edge %d that does not contain it", n.id, edgeID)
			}
		}
	}
	return nil
}
