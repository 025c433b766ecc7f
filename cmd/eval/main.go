package main

import (
	"context"
	"errors"
	"flag"
	"math"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/logger"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/roundtrip"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "config.toml", "path of the config file")
	runs       = flag.Int("runs", 100, "number of generations, seeds seed..seed+runs-1")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent generations")
)

type runResult struct {
	seed     uint64
	accepted bool
	attempts int
	length   float64
	took     time.Duration
	reasons  map[error]int
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := util.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("can not read config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := engine.NewEngine(ctx, cfg.Pbf, cfg.Concavity, logger)
	if err != nil {
		logger.Fatal("can not build engine", zap.Error(err))
	}

	first := cfg.Seed
	if first == 0 {
		first = 1
	}
	seeds := make([]uint64, *runs)
	for i := range seeds {
		seeds[i] = first + uint64(i)
	}

	generate := func(seed uint64) runResult {
		runCtx := ctx
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		before := time.Now()
		result, err := e.Roundtrip(runCtx, engine.Query{
			Start:         geo.NewCoordinate(cfg.StartLat, cfg.StartLon),
			DistanceKm:    float64(cfg.Distance),
			Seed:          seed,
			MaxIterations: cfg.MaxIterations,
		})
		res := runResult{
			seed:     seed,
			accepted: err == nil,
			attempts: len(result.Attempts),
			length:   result.Route.Length,
			took:     time.Since(before),
			reasons:  make(map[error]int, 3),
		}
		for _, a := range result.Attempts {
			if a.Reason != nil {
				res.reasons[a.Reason]++
			}
		}
		if err != nil && !errors.Is(err, roundtrip.ErrNoFeasibleRoute) {
			logger.Warn("generation aborted", zap.Uint64("seed", seed), zap.Error(err))
		}
		return res
	}

	results := concurrent.Map(*workers, seeds, generate)
	report(logger, results, float64(cfg.Distance)*1000)
}

func report(logger *zap.Logger, results []runResult, target float64) {
	var (
		accepted      int
		totalAttempts int
		lengthErr     float64
		took          time.Duration
		reasons       = make(map[error]int, 3)
	)
	for _, r := range results {
		totalAttempts += r.attempts
		took += r.took
		for reason, n := range r.reasons {
			reasons[reason] += n
		}
		if !r.accepted {
			continue
		}
		accepted++
		lengthErr += math.Abs(r.length-target) / target
	}

	n := max(1, len(results))
	logger.Sugar().Infof("runs: %d, accepted: %d (%.1f%%)", len(results), accepted, 100*float64(accepted)/float64(n))
	logger.Sugar().Infof("mean attempts: %.2f, mean time: %v", float64(totalAttempts)/float64(n), took/time.Duration(n))
	if accepted > 0 {
		logger.Sugar().Infof("mean relative length error of accepted routes: %.4f", lengthErr/float64(accepted))
	}
	logger.Info("rejections",
		zap.Int("openLoop", reasons[roundtrip.ErrOpenLoop]),
		zap.Int("backtracking", reasons[roundtrip.ErrBacktracking]),
		zap.Int("lengthOutOfBounds", reasons[roundtrip.ErrLengthOutOfBounds]))
}
