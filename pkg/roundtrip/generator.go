package roundtrip

import (
	"context"
	"errors"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/surrounding"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var ErrNoFeasibleRoute = errors.New("no feasible roundtrip found")

type Snapper interface {
	Nearest(q geo.Coordinate) (uint64, bool)
	Snap(coords []geo.Coordinate) []uint64
}

type Options struct {
	TargetMeters     float64
	WaypointCount    int
	MaxIterations    int
	MinDistinctRatio float64
	LengthTolerance  float64
}

// DefaultOptions for a roundtrip of distanceKm.
func DefaultOptions(distanceKm float64) Options {
	return Options{
		TargetMeters:     distanceKm * 1000,
		WaypointCount:    WaypointCount(surrounding.AssumedRadius(distanceKm)),
		MaxIterations:    pkg.DEFAULT_MAX_ITERATIONS,
		MinDistinctRatio: pkg.MIN_DISTINCT_RATIO,
		LengthTolerance:  pkg.LENGTH_TOLERANCE,
	}
}

// WaypointCount is the number of points of interest sampled per attempt for a search radius in meter.
func WaypointCount(radius float64) int {
	return max(1, int(radius*pkg.WAYPOINTS_PER_RADIUS_M))
}

type Route struct {
	Coordinates []geo.Coordinate
	Length      float64 // meter
	Tour        []uint64
}

type Attempt struct {
	Iteration int
	Waypoints int
	Verdict
}

type Result struct {
	Route    Route
	Attempts []Attempt
}

// Generator resamples waypoints until a candidate loop passes validation.
type Generator struct {
	snapper       Snapper
	orderer       *routing.TourOrderer
	reconstructor *routing.RouteReconstructor
	pois          []geo.Coordinate
	rng           *rand.Rand
	opts          Options
	logger        *zap.Logger
}

// NewGenerator. pois must already be limited to the search radius. rng is the only source of randomness.
func NewGenerator(snapper Snapper, orderer *routing.TourOrderer, reconstructor *routing.RouteReconstructor,
	pois []geo.Coordinate, rng *rand.Rand, opts Options, logger *zap.Logger) *Generator {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = pkg.DEFAULT_MAX_ITERATIONS
	}
	if opts.WaypointCount <= 0 {
		opts.WaypointCount = 1
	}
	return &Generator{
		snapper:       snapper,
		orderer:       orderer,
		reconstructor: reconstructor,
		pois:          pois,
		rng:           rng,
		opts:          opts,
		logger:        logger,
	}
}

// Generate runs until a route is accepted, MaxIterations attempts failed or ctx is done.
// the returned Result carries every attempt, also when an error is returned.
func (g *Generator) Generate(ctx context.Context, start geo.Coordinate) (*Result, error) {
	result := &Result{Attempts: make([]Attempt, 0, 8)}

	startNode, ok := g.snapper.Nearest(start)
	if !ok {
		return result, util.WrapErrorf(nil, ErrNoFeasibleRoute, "no intersection near start %v,%v", start.Lat, start.Lon)
	}

	for it := 1; it <= g.opts.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		route, attempt := g.attempt(it, startNode)
		result.Attempts = append(result.Attempts, attempt)

		if attempt.Accepted() {
			g.logger.Info("roundtrip accepted",
				zap.Int("iteration", it),
				zap.Float64("length", attempt.Length),
				zap.Float64("target", g.opts.TargetMeters),
				zap.Int("points", attempt.Points))
			result.Route = route
			return result, nil
		}

		g.logger.Debug("roundtrip rejected",
			zap.Int("iteration", it),
			zap.Error(attempt.Reason),
			zap.Float64("length", attempt.Length),
			zap.Float64("distinctRatio", attempt.DistinctRatio))
	}

	return result, util.WrapErrorf(nil, ErrNoFeasibleRoute, "no route accepted after %d attempts", g.opts.MaxIterations)
}

func (g *Generator) attempt(iteration int, startNode uint64) (Route, Attempt) {
	sample := g.sample()

	waypoints := make([]uint64, 0, len(sample))
	for _, id := range g.snapper.Snap(sample) {
		if id != startNode {
			waypoints = append(waypoints, id)
		}
	}

	ordered := g.orderer.Order(startNode, waypoints)
	tour := make([]uint64, 0, len(ordered)+2)
	tour = append(tour, startNode)
	tour = append(tour, ordered...)
	tour = append(tour, startNode)

	coords := g.reconstructor.Reconstruct(tour)
	verdict := Validate(coords, g.opts.TargetMeters, g.opts.MinDistinctRatio, g.opts.LengthTolerance)

	route := Route{
		Coordinates: coords,
		Length:      verdict.Length,
		Tour:        tour,
	}
	return route, Attempt{Iteration: iteration, Waypoints: len(waypoints), Verdict: verdict}
}

// sample shuffles a copy of the pool and keeps the first WaypointCount points.
func (g *Generator) sample() []geo.Coordinate {
	pool := make([]geo.Coordinate, len(g.pois))
	copy(pool, g.pois)
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:min(len(pool), g.opts.WaypointCount)]
}
