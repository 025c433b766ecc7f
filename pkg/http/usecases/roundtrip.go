package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/roundtrip"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
)

type RoundtripService struct {
	log           *zap.Logger
	engine        RoundtripEngine
	timeout       time.Duration
	maxIterations int
}

// NewRoundtripService. a timeout <= 0 leaves the request context alone.
func NewRoundtripService(log *zap.Logger, engine RoundtripEngine, timeout time.Duration, maxIterations int) *RoundtripService {
	return &RoundtripService{
		log:           log,
		engine:        engine,
		timeout:       timeout,
		maxIterations: maxIterations,
	}
}

// Roundtrip returns the length in meter, the encoded polyline and the number of attempts of an accepted route.
// a seed of 0 is replaced by a time based one, the used seed is returned.
func (rs *RoundtripService) Roundtrip(ctx context.Context, lat, lon, distanceKm float64, seed uint64) (float64, string, int, uint64, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if rs.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rs.timeout)
		defer cancel()
	}

	result, err := rs.engine.Roundtrip(ctx, engine.Query{
		Start:         geo.NewCoordinate(lat, lon),
		DistanceKm:    distanceKm,
		Seed:          seed,
		MaxIterations: rs.maxIterations,
	})
	attempts := 0
	if result != nil {
		attempts = len(result.Attempts)
	}

	switch {
	case err == nil:
	case errors.Is(err, roundtrip.ErrNoFeasibleRoute), errors.Is(err, context.DeadlineExceeded):
		return 0, "", attempts, seed, util.WrapErrorf(err, util.ErrUnprocessable,
			"no roundtrip of %.1f km around %f,%f", distanceKm, lat, lon)
	default:
		return 0, "", attempts, seed, err
	}

	rs.log.Info("roundtrip found",
		zap.Float64("distance", result.Route.Length),
		zap.Int("attempts", attempts),
		zap.Uint64("seed", seed))

	return result.Route.Length, geo.PolylineFromCoords(result.Route.Coordinates), attempts, seed, nil
}
