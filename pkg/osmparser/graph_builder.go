package osmparser

import (
	"errors"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
)

var ErrMissingCoordinate = errors.New("way references a node without coordinate")

type GraphBuilder struct {
	logger *zap.Logger
}

func NewGraphBuilder(logger *zap.Logger) *GraphBuilder {
	return &GraphBuilder{logger: logger}
}

// Build splits every way at its intersections and turns the interior chunks into edges.
// the dangling chunk before the first and after the last intersection of a way are dropped.
func (b *GraphBuilder) Build(ways []ClassifiedWay, coords map[uint64]NodeCoord) (*datastructure.Graph, error) {
	intersections := detectIntersections(ways)

	graph := datastructure.NewGraph()
	skipped := 0
	for i, way := range ways {
		if way.ID > pkg.MAX_WAY_ID {
			return nil, util.WrapErrorf(nil, datastructure.ErrWayIDOutOfRange,
				"way %d does not fit in %d bits", way.ID, pkg.WAY_ID_BITS)
		}
		if (i+1)%100000 == 0 {
			b.logger.Sugar().Infof("building graph from ways: %d...", i+1)
		}

		chunks := chunkUp(way.Nodes, intersections)
		if len(chunks) == 0 {
			skipped++
			continue
		}

		for chunkIndex, chunk := range chunks {
			edgeID, err := datastructure.NewEdgeID(way.ID, chunkIndex)
			if err != nil {
				return nil, err
			}

			distance := 0.0
			var prev geo.Coordinate
			for j, nodeID := range chunk {
				c, ok := coords[nodeID]
				if !ok {
					return nil, util.WrapErrorf(nil, ErrMissingCoordinate,
						"way %d: node %d has no coordinate", way.ID, nodeID)
				}
				coord := geo.NewCoordinate(c.lat, c.lon)
				if j > 0 {
					distance += geo.HaversineMeters(prev, coord)
				}
				graph.EnsureNode(nodeID, coord)
				prev = coord
			}

			if err := graph.AddEdge(datastructure.NewEdge(edgeID, chunk, distance, way.Directed)); err != nil {
				return nil, err
			}
		}
	}

	b.logger.Sugar().Infof("number of graph nodes: %v", graph.NumberOfNodes())
	b.logger.Sugar().Infof("number of graph edges: %v", graph.NumberOfEdges())
	b.logger.Sugar().Infof("ways without interior chunk: %v", skipped)
	return graph, nil
}

// detectIntersections marks a node as intersection once it is seen a second time, in the same way or another one.
func detectIntersections(ways []ClassifiedWay) map[uint64]bool {
	nodes := make(map[uint64]bool)
	for _, way := range ways {
		for _, nodeID := range way.Nodes {
			if _, ok := nodes[nodeID]; ok {
				nodes[nodeID] = true
			} else {
				nodes[nodeID] = false
			}
		}
	}
	return nodes
}

// chunkUp cuts the way at every intersection. the intersection closes the current chunk and opens the next one.
func chunkUp(wayNodes []uint64, intersections map[uint64]bool) [][]uint64 {
	chunks := make([][]uint64, 0, 2)
	chunk := make([]uint64, 0, len(wayNodes))
	for _, nodeID := range wayNodes {
		chunk = append(chunk, nodeID)
		if intersections[nodeID] {
			chunks = append(chunks, chunk)
			chunk = []uint64{nodeID}
		}
	}
	chunks = append(chunks, chunk)

	if len(chunks) <= 2 {
		return nil
	}
	return chunks[1 : len(chunks)-1]
}
