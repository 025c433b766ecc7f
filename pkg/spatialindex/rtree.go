package spatialindex

import (
	"math"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const (
	initialSearchRadius = 0.1   // km
	maxSearchRadius     = 102.4 // km
)

// Rtree indexes graph intersections by coordinate. the graph is read-only, so is the index after Build.
type Rtree struct {
	tr     *rtree.RTreeG[uint64]
	coords map[uint64]geo.Coordinate
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[uint64]
	return &Rtree{
		tr:     &tr,
		coords: make(map[uint64]geo.Coordinate),
	}
}

// Build. index every intersection of graph. interior shape points of an edge are never snap targets.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	intersections := graph.Intersections()
	for i, id := range intersections {
		coord, _ := graph.GetCoordinate(id)
		rt.Insert(id, coord)
		if (i+1)%100000 == 0 {
			log.Info("Building R-tree spatial index...", zap.Int("indexed", i+1))
		}
	}
	log.Info("R-tree spatial index built.", zap.Int("intersections", len(intersections)))
}

func (rt *Rtree) Insert(id uint64, coord geo.Coordinate) {
	rt.coords[id] = coord
	rt.tr.Insert([2]float64{coord.Lon, coord.Lat}, [2]float64{coord.Lon, coord.Lat}, id)
}

func (rt *Rtree) Size() int {
	return len(rt.coords)
}

// SearchWithinRadius search for all node ids inside the box spanned by radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []uint64 {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]uint64, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data uint64) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Nearest returns the indexed node closest (great-circle) to q. ties go to the lower id.
func (rt *Rtree) Nearest(q geo.Coordinate) (uint64, bool) {
	if len(rt.coords) == 0 {
		return 0, false
	}

	for radius := initialSearchRadius; radius <= maxSearchRadius; radius *= 2 {
		candidates := rt.SearchWithinRadius(q.Lat, q.Lon, radius)
		if len(candidates) == 0 {
			continue
		}
		best, bestDist := rt.closest(q, candidates)

		// the search box only covers the full circle of radius/sqrt(2)
		if bestDist/1000 <= radius/math.Sqrt2 {
			return best, true
		}
		wider := rt.SearchWithinRadius(q.Lat, q.Lon, bestDist/1000*math.Sqrt2*1.01)
		best, _ = rt.closest(q, append(wider, best))
		return best, true
	}

	all := make([]uint64, 0, len(rt.coords))
	for id := range rt.coords {
		all = append(all, id)
	}
	best, _ := rt.closest(q, all)
	return best, true
}

func (rt *Rtree) closest(q geo.Coordinate, candidates []uint64) (uint64, float64) {
	best := candidates[0]
	bestDist := geo.HaversineMeters(q, rt.coords[best])
	for _, id := range candidates[1:] {
		d := geo.HaversineMeters(q, rt.coords[id])
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	return best, bestDist
}

// Snap maps every coordinate to its nearest indexed node. repeated nodes are kept once, in first-seen order.
func (rt *Rtree) Snap(coords []geo.Coordinate) []uint64 {
	seen := make(map[uint64]struct{}, len(coords))
	ids := make([]uint64, 0, len(coords))
	for _, c := range coords {
		id, ok := rt.Nearest(c)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
