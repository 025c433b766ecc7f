package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/gpx"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/logger"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "config.toml", "path of the config file")
	logLevel   = flag.String("log_level", "info", "minimum log level")
)

func main() {
	flag.Parse()
	logger, err := logger.NewWithLevel(*logLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("roundtrip failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg, err := util.ReadConfig(*configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := engine.NewEngine(ctx, cfg.Pbf, cfg.Concavity, logger)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result, err := e.Roundtrip(ctx, engine.Query{
		Start:         geo.NewCoordinate(cfg.StartLat, cfg.StartLon),
		DistanceKm:    float64(cfg.Distance),
		Seed:          seed,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return util.WrapErrorf(err, util.ErrUnprocessable, "seed %d, %d attempts", seed, len(result.Attempts))
	}

	logger.Info("roundtrip accepted",
		zap.Float64("length", result.Route.Length),
		zap.Int("points", len(result.Route.Coordinates)),
		zap.Int("attempts", len(result.Attempts)),
		zap.Uint64("seed", seed))

	return gpx.NewExporter(logger).Write(cfg.Output, result.Route.Coordinates)
}
