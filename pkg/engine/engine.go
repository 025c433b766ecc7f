package engine

import (
	"context"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/roundtrip"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/surrounding"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Engine owns the read-only graph of one map extract. Roundtrip may be called concurrently.
type Engine struct {
	logger        *zap.Logger
	data          *osmparser.OsmData
	graph         *datastructure.Graph
	bbox          *datastructure.BoundingBox
	snapper       *spatialindex.Rtree
	routingEngine *routing.RoutingEngine
	orderer       *routing.TourOrderer
	reconstructor *routing.RouteReconstructor
}

type Query struct {
	Start         geo.Coordinate
	DistanceKm    float64
	Seed          uint64
	MaxIterations int // 0 keeps the default
}

func NewEngine(ctx context.Context, pbfPath string, concavity float64, logger *zap.Logger) (*Engine, error) {
	logger.Info("reading OpenStreetMap extract", zap.String("pbf", pbfPath))
	data, err := osmparser.NewOsmReader(logger).Read(ctx, pbfPath)
	if err != nil {
		return nil, err
	}
	return NewEngineFromData(data, concavity, logger)
}

func NewEngineFromData(data *osmparser.OsmData, concavity float64, logger *zap.Logger) (*Engine, error) {
	if concavity <= 0 {
		concavity = pkg.DEFAULT_CONCAVITY
	}

	ways := data.ClassifiedWays(osmparser.NewBikeClassifier())
	logger.Sugar().Infof("bikeable ways: %d of %d", len(ways), len(data.Ways))

	graph, err := osmparser.NewGraphBuilder(logger).Build(ways, data.NodeCoords())
	if err != nil {
		return nil, err
	}

	components := graph.StronglyConnectedComponents()
	if len(components) > 0 {
		logger.Sugar().Infof("strongly connected components: %d, largest has %d of %d intersections",
			len(components), len(components[0]), len(graph.Intersections()))
	}

	rt := spatialindex.NewRtree()
	rt.Build(graph, logger)

	routingEngine, err := routing.NewRoutingEngine(graph, logger, routing.DEFAULT_LEG_CACHE_SIZE)
	if err != nil {
		return nil, err
	}

	return &Engine{
		logger:        logger,
		data:          data,
		graph:         graph,
		bbox:          graph.BoundingBox(),
		snapper:       rt,
		routingEngine: routingEngine,
		orderer:       routing.NewTourOrderer(graph, logger, concavity),
		reconstructor: routing.NewRouteReconstructor(routingEngine, logger),
	}, nil
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

// Roundtrip extracts the points of interest around q.Start and runs the acceptance loop on them.
// every call owns its random source, seeded with q.Seed.
func (e *Engine) Roundtrip(ctx context.Context, q Query) (*roundtrip.Result, error) {
	if e.bbox == nil || !e.bbox.Contains(q.Start.Lat, q.Start.Lon) {
		return &roundtrip.Result{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"start %f,%f is outside of the map", q.Start.Lat, q.Start.Lon)
	}

	rng := rand.New(rand.NewSource(q.Seed))

	pois, radius := surrounding.NewExtractor(e.logger, rng).InterestingPoints(e.data, q.Start, q.DistanceKm)

	opts := roundtrip.DefaultOptions(q.DistanceKm)
	opts.WaypointCount = roundtrip.WaypointCount(radius)
	if q.MaxIterations > 0 {
		opts.MaxIterations = q.MaxIterations
	}

	e.logger.Info("generating roundtrip",
		zap.Float64("lat", q.Start.Lat),
		zap.Float64("lon", q.Start.Lon),
		zap.Float64("targetMeters", opts.TargetMeters),
		zap.Int("pois", len(pois)),
		zap.Int("waypoints", opts.WaypointCount),
		zap.Uint64("seed", q.Seed))

	gen := roundtrip.NewGenerator(e.snapper, e.orderer, e.reconstructor, pois, rng, opts, e.logger)
	return gen.Generate(ctx, q.Start)
}
