package routing

import (
	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
)

type vertexInfo struct {
	dist      float64 // g-score, meter
	parent    uint64
	hasParent bool
	settled   bool
	pqNode    *da.PriorityQueueNode[uint64]
}

func newVertexInfo(dist float64, parent uint64, hasParent bool, pqNode *da.PriorityQueueNode[uint64]) *vertexInfo {
	return &vertexInfo{
		dist:      dist,
		parent:    parent,
		hasParent: hasParent,
		pqNode:    pqNode,
	}
}

// AStar point to point search over intersections. the heuristic is the great-circle distance to the target.
type AStar struct {
	graph *da.Graph

	numSettledNodes int
}

func NewAStar(graph *da.Graph) *AStar {
	return &AStar{
		graph: graph,
	}
}

func (as *AStar) GetNumSettledNodes() int {
	return as.numSettledNodes
}

// ShortestPath returns the node sequence from s to t, both inclusive. ok is false if t is unreachable from s
// or one of them is not part of the graph.
func (as *AStar) ShortestPath(s, t uint64) ([]uint64, bool) {
	if _, ok := as.graph.GetNode(s); !ok {
		return nil, false
	}
	tNode, ok := as.graph.GetNode(t)
	if !ok {
		return nil, false
	}
	if s == t {
		return []uint64{s}, true
	}

	target := tNode.GetCoordinate()
	heuristic := func(v uint64) float64 {
		coord, _ := as.graph.GetCoordinate(v)
		return geo.HaversineMeters(coord, target)
	}

	// scratch state is private to this query
	forwardInfo := make(map[uint64]*vertexInfo)
	pq := da.NewFourAryHeap[uint64]()
	as.numSettledNodes = 0

	sNode := da.NewPriorityQueueNode(heuristic(s), s)
	pq.Insert(sNode)
	forwardInfo[s] = newVertexInfo(0, 0, false, sNode)

	for !pq.IsEmpty() {
		item, _ := pq.ExtractMin()
		u := item.GetItem()
		uInfo := forwardInfo[u]
		uInfo.settled = true
		as.numSettledNodes++

		if u == t {
			return as.retrievePath(forwardInfo, t), true
		}

		uNode, _ := as.graph.GetNode(u)
		for _, edgeID := range uNode.GetEdges() {
			e, _ := as.graph.GetEdge(edgeID)
			if !e.TraversableFrom(u) {
				// one way against the direction of travel, or u is only a shape point of e
				continue
			}
			v, _ := e.Other(u)
			if v == u {
				continue
			}

			newDist := uInfo.dist + e.GetDistance()
			vInfo, visited := forwardInfo[v]
			if visited && (vInfo.settled || newDist >= vInfo.dist) {
				continue
			}

			priority := newDist + heuristic(v)
			if visited {
				// v is still in the priority queue, decrease its key
				vInfo.dist = newDist
				vInfo.parent = u
				vInfo.hasParent = true
				pq.DecreaseKey(vInfo.pqNode, priority)
			} else {
				vNode := da.NewPriorityQueueNode(priority, v)
				pq.Insert(vNode)
				forwardInfo[v] = newVertexInfo(newDist, u, true, vNode)
			}
		}
	}

	return nil, false
}

func (as *AStar) retrievePath(forwardInfo map[uint64]*vertexInfo, t uint64) []uint64 {
	path := []uint64{t}
	cur := forwardInfo[t]
	for cur.hasParent {
		path = append(path, cur.parent)
		cur = forwardInfo[cur.parent]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
