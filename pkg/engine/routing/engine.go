package routing

import (
	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"go.uber.org/zap"
)

type LegCacheKey struct {
	from uint64
	to   uint64
}

func NewLegCacheKey(from, to uint64) LegCacheKey {
	return LegCacheKey{from, to}
}

// leg is a cached A* result. found is false for unreachable pairs, these are cached too.
type leg struct {
	path  []uint64
	found bool
}

type RoutingEngine struct {
	graph    *da.Graph
	logger   *zap.Logger
	legCache *lru.Cache[LegCacheKey, leg]
}

// NewRoutingEngine. the graph must not change afterwards, cached legs are never invalidated.
// legCacheSize <= 0 disables the cache.
func NewRoutingEngine(graph *da.Graph, logger *zap.Logger, legCacheSize int) (*RoutingEngine, error) {
	re := &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
	if legCacheSize > 0 {
		legCache, err := lru.New[LegCacheKey, leg](legCacheSize)
		if err != nil {
			return nil, err
		}
		re.legCache = legCache
	}
	return re, nil
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

// ShortestPath. A* between two intersections, memoised per (from, to).
func (re *RoutingEngine) ShortestPath(from, to uint64) ([]uint64, bool) {
	key := NewLegCacheKey(from, to)
	if re.legCache != nil {
		if cached, ok := re.legCache.Get(key); ok {
			return cached.path, cached.found
		}
	}

	as := NewAStar(re.graph)
	path, found := as.ShortestPath(from, to)
	if re.legCache != nil {
		re.legCache.Add(key, leg{path: path, found: found})
	}
	return path, found
}

// PathDistance sums the edge distances along path, using the same edge choice as the reconstruction.
func (re *RoutingEngine) PathDistance(path []uint64) float64 {
	dist := 0.0
	for i := 0; i+1 < len(path); i++ {
		e, ok := re.SharedEdge(path[i], path[i+1])
		if !ok {
			continue
		}
		dist += e.GetDistance()
	}
	return dist
}

// SharedEdge returns the edge used to travel from u to v. if u and v share more than one usable edge
// the shortest one wins, then the lowest id.
func (re *RoutingEngine) SharedEdge(u, v uint64) (*da.Edge, bool) {
	var best *da.Edge
	for _, edgeID := range re.graph.SharedEdges(u, v) {
		e, _ := re.graph.GetEdge(edgeID)
		if !e.TraversableFrom(u) {
			continue
		}
		if other, _ := e.Other(u); other != v {
			continue
		}
		if best == nil || e.GetDistance() < best.GetDistance() {
			best = e
		}
	}
	return best, best != nil
}
