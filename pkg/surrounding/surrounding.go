package surrounding

import (
	"slices"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/osmparser"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Extractor proposes points of interest around a start coordinate.
type Extractor struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// NewExtractor. rng picks the outer way of multipolygon relations.
func NewExtractor(logger *zap.Logger, rng *rand.Rand) *Extractor {
	return &Extractor{
		logger: logger,
		rng:    rng,
	}
}

// AssumedRadius returns the search radius in meter for a roundtrip of distanceKm, the radius of a circle with that circumference.
func AssumedRadius(distanceKm float64) float64 {
	return distanceKm * 1000 / pkg.RADIUS_DIVISOR
}

// InterestingPoints returns every point of interest strictly inside the assumed radius around start,
// in ascending object id order (nodes, then ways, then relations), and the radius in meter.
func (e *Extractor) InterestingPoints(data *osmparser.OsmData, start geo.Coordinate, distanceKm float64) ([]geo.Coordinate, float64) {
	radius := AssumedRadius(distanceKm)

	candidates := make([]geo.Coordinate, 0)

	nodeIDs := sortedKeys(data.Nodes)
	for _, id := range nodeIDs {
		if p, ok := interestingNode(data.Nodes[id]); ok {
			candidates = append(candidates, p)
		}
	}

	wayIDs := sortedKeys(data.Ways)
	for _, id := range wayIDs {
		if p, ok := interestingWay(data, data.Ways[id]); ok {
			candidates = append(candidates, p)
		}
	}

	relationIDs := sortedKeys(data.Relations)
	for _, id := range relationIDs {
		if p, ok := e.interestingRelation(data, data.Relations[id]); ok {
			candidates = append(candidates, p)
		}
	}

	points := make([]geo.Coordinate, 0, len(candidates))
	for _, p := range candidates {
		if geo.HaversineMeters(start, p) < radius {
			points = append(points, p)
		}
	}

	e.logger.Sugar().Infof("interesting points: %d candidates, %d within %.0f m", len(candidates), len(points), radius)
	return points, radius
}

func interestingNode(node *osm.Node) (geo.Coordinate, bool) {
	for _, tag := range node.Tags {
		if values, ok := nodeTags[tag.Key]; ok {
			if _, ok := values[tag.Value]; ok {
				return geo.NewCoordinate(node.Lat, node.Lon), true
			}
		}
	}
	return geo.Coordinate{}, false
}

func interestingWay(data *osmparser.OsmData, way *osm.Way) (geo.Coordinate, bool) {
	for _, tag := range way.Tags {
		if values, ok := areaTags[tag.Key]; ok {
			if _, ok := values[tag.Value]; ok {
				if c, ok := largeAreaCenter(data, way); ok {
					return c, true
				}
			}
		}
		if values, ok := wayTags[tag.Key]; ok {
			if _, ok := values[tag.Value]; ok {
				polygon, ok := toPolygon(data, way)
				if !ok {
					return geo.Coordinate{}, false
				}
				return center(polygon), true
			}
		}
	}
	return geo.Coordinate{}, false
}

// interestingRelation. centroid of a random outer way of a natural/landuse multipolygon.
func (e *Extractor) interestingRelation(data *osmparser.OsmData, relation *osm.Relation) (geo.Coordinate, bool) {
	if relation.Tags.Find("type") != "multipolygon" {
		return geo.Coordinate{}, false
	}

	interesting := false
	for _, tag := range relation.Tags {
		if values, ok := areaTags[tag.Key]; ok {
			if _, ok := values[tag.Value]; ok {
				interesting = true
				break
			}
		}
	}
	if !interesting {
		return geo.Coordinate{}, false
	}

	outerCenters := make([]geo.Coordinate, 0, len(relation.Members))
	for _, member := range relation.Members {
		if member.Type != osm.TypeWay || member.Role != "outer" {
			continue
		}
		way, ok := data.Ways[osm.WayID(member.Ref)]
		if !ok {
			// outer way outside of the extract
			continue
		}
		if c, ok := largeAreaCenter(data, way); ok {
			outerCenters = append(outerCenters, c)
		}
	}
	if len(outerCenters) == 0 {
		return geo.Coordinate{}, false
	}
	return outerCenters[e.rng.Intn(len(outerCenters))], true
}

func largeAreaCenter(data *osmparser.OsmData, way *osm.Way) (geo.Coordinate, bool) {
	polygon, ok := toPolygon(data, way)
	if !ok {
		return geo.Coordinate{}, false
	}
	if orbgeo.Area(polygon) <= pkg.MIN_INTERESTING_AREA_SQM {
		return geo.Coordinate{}, false
	}
	return center(polygon), true
}

// toPolygon closes the ring of way if the way itself is not closed.
func toPolygon(data *osmparser.OsmData, way *osm.Way) (orb.Polygon, bool) {
	coords, ok := data.WayCoords(way)
	if !ok || len(coords) == 0 {
		return nil, false
	}
	ring := make(orb.Ring, 0, len(coords)+1)
	for _, c := range coords {
		ring = append(ring, orb.Point{c.GetLon(), c.GetLat()})
	}
	if !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}, true
}

func center(polygon orb.Polygon) geo.Coordinate {
	c, _ := planar.CentroidArea(polygon)
	return geo.NewCoordinate(c.Lat(), c.Lon())
}

func sortedKeys[K ~int64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
