package routing

import (
	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
)

type Router interface {
	ShortestPath(s, t uint64) ([]uint64, bool)
}

// LegRouter routes single tour legs and picks the edge between two consecutive path nodes.
type LegRouter interface {
	Router
	GetGraph() *da.Graph
	SharedEdge(u, v uint64) (*da.Edge, bool)
}

var (
	_ Router    = (*AStar)(nil)
	_ LegRouter = (*RoutingEngine)(nil)
)
