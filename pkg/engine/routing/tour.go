package routing

import (
	"sort"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	da "github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"go.uber.org/zap"
)

// TourOrderer orders waypoints along the concave hull around them, so the loop does not cross itself.
type TourOrderer struct {
	graph     *da.Graph
	logger    *zap.Logger
	concavity float64
}

func NewTourOrderer(graph *da.Graph, logger *zap.Logger, concavity float64) *TourOrderer {
	if concavity <= 0 {
		concavity = pkg.DEFAULT_CONCAVITY
	}
	return &TourOrderer{
		graph:     graph,
		logger:    logger,
		concavity: concavity,
	}
}

// Order returns the waypoints on the hull ring, in ring order. start is not part of the result.
// with fewer than 3 distinct coordinates the waypoints come back in input order.
func (o *TourOrderer) Order(start uint64, waypoints []uint64) []uint64 {
	waypoints = removeDuplicates(waypoints)

	ids := make([]uint64, 0, len(waypoints))
	coords := make([]geo.Coordinate, 0, len(waypoints))
	for _, id := range waypoints {
		coord, ok := o.graph.GetCoordinate(id)
		if !ok {
			continue
		}
		ids = append(ids, id)
		coords = append(coords, coord)
	}

	startCoord, ok := o.graph.GetCoordinate(start)
	if !ok || countDistinct(coords) < 3 {
		return ids
	}

	ring, ok := geo.ConcaveHull(coords, o.concavity)
	if !ok {
		return ids
	}

	firstSector, lastSector := selectSectors(geo.Bearing(startCoord, coords[ring[0]]),
		geo.Bearing(startCoord, coords[ring[len(ring)-1]]))

	beforeFirst, afterLast := o.assignInner(startCoord, ids, coords, ring, firstSector, lastSector)
	o.logger.Debug("ordered waypoints along concave hull",
		zap.Int("ring", len(ring)),
		zap.Int("inner", len(ids)-len(ring)),
		zap.String("firstSector", firstSector.String()),
		zap.String("lastSector", lastSector.String()),
		zap.Int("beforeFirst", len(beforeFirst)),
		zap.Int("afterLast", len(afterLast)))

	ordered := make([]uint64, 0, len(ring))
	for _, i := range ring {
		ordered = append(ordered, ids[i])
	}
	return ordered
}

// selectSectors returns the sectors of the first and the last ring vertex seen from start.
// when both fall into the same sector the last one is moved to its clockwise neighbour if
// firstBearing < lastBearing, otherwise to its counter-clockwise neighbour, so the loop leaves and
// returns from two different directions.
func selectSectors(firstBearing, lastBearing float64) (pkg.Sector, pkg.Sector) {
	firstSector := pkg.SectorOf(firstBearing)
	lastSector := pkg.SectorOf(lastBearing)
	if firstSector != lastSector {
		return firstSector, lastSector
	}
	if firstBearing-lastBearing < 0 {
		return firstSector, lastSector.Clockwise()
	}
	return firstSector, lastSector.CounterClockwise()
}

// assignInner puts inner points of the first sector ascending by distance from start into beforeFirst,
// inner points of the last sector descending into afterLast.
// TODO: merge beforeFirst and afterLast into the ring order once the acceptance rate with inner points is measured with cmd/eval.
func (o *TourOrderer) assignInner(start geo.Coordinate, ids []uint64, coords []geo.Coordinate, ring []int,
	firstSector, lastSector pkg.Sector) ([]uint64, []uint64) {
	onRing := make(map[int]struct{}, len(ring))
	for _, i := range ring {
		onRing[i] = struct{}{}
	}

	type innerPoint struct {
		id   uint64
		dist float64
	}
	beforeFirst := make([]innerPoint, 0)
	afterLast := make([]innerPoint, 0)
	for i := range coords {
		if _, ok := onRing[i]; ok {
			continue
		}
		sector := pkg.SectorOf(geo.Bearing(start, coords[i]))
		p := innerPoint{id: ids[i], dist: geo.HaversineMeters(start, coords[i])}
		switch sector {
		case firstSector:
			beforeFirst = append(beforeFirst, p)
		case lastSector:
			afterLast = append(afterLast, p)
		}
	}

	sort.SliceStable(beforeFirst, func(i, j int) bool {
		return beforeFirst[i].dist < beforeFirst[j].dist
	})
	sort.SliceStable(afterLast, func(i, j int) bool {
		return afterLast[i].dist > afterLast[j].dist
	})

	before := make([]uint64, len(beforeFirst))
	for i, p := range beforeFirst {
		before[i] = p.id
	}
	after := make([]uint64, len(afterLast))
	for i, p := range afterLast {
		after[i] = p.id
	}
	return before, after
}

func countDistinct(coords []geo.Coordinate) int {
	set := make(map[geo.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}
	return len(set)
}
