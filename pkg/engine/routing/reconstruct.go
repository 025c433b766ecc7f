package routing

import (
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"go.uber.org/zap"
)

// RouteReconstructor expands an intersection level tour into the full polyline, shape points included.
type RouteReconstructor struct {
	engine LegRouter
	logger *zap.Logger
}

func NewRouteReconstructor(engine LegRouter, logger *zap.Logger) *RouteReconstructor {
	return &RouteReconstructor{
		engine: engine,
		logger: logger,
	}
}

// Reconstruct emits tour[0] and then, leg by leg, the chain points between consecutive hops followed by the hop itself.
// a leg without path contributes nothing.
func (rr *RouteReconstructor) Reconstruct(tour []uint64) []geo.Coordinate {
	if len(tour) == 0 {
		return nil
	}
	graph := rr.engine.GetGraph()

	coords := make([]geo.Coordinate, 0, len(tour)*16)
	if first, ok := graph.GetCoordinate(tour[0]); ok {
		coords = append(coords, first)
	}

	for i := 0; i+1 < len(tour); i++ {
		path, ok := rr.engine.ShortestPath(tour[i], tour[i+1])
		if !ok {
			rr.logger.Debug("no path between tour stops",
				zap.Uint64("from", tour[i]), zap.Uint64("to", tour[i+1]))
			continue
		}
		coords = rr.appendPath(coords, path)
	}
	return coords
}

func (rr *RouteReconstructor) appendPath(coords []geo.Coordinate, path []uint64) []geo.Coordinate {
	graph := rr.engine.GetGraph()
	for j := 0; j+1 < len(path); j++ {
		u, v := path[j], path[j+1]
		e, ok := rr.engine.SharedEdge(u, v)
		if !ok {
			continue
		}

		chain := e.GetChain()
		if e.GetS() == u {
			for _, n := range chain[1 : len(chain)-1] {
				c, _ := graph.GetCoordinate(n)
				coords = append(coords, c)
			}
		} else {
			// travelling against chain order
			for k := len(chain) - 2; k >= 1; k-- {
				c, _ := graph.GetCoordinate(chain[k])
				coords = append(coords, c)
			}
		}

		vCoord, _ := graph.GetCoordinate(v)
		coords = append(coords, vCoord)
	}
	return coords
}
