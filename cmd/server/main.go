package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/http"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	pbfPath       = flag.String("pbf", "./resources/map.osm.pbf", "OpenStreetMap pbf extract")
	concavity     = flag.Float64("concavity", pkg.DEFAULT_CONCAVITY, "concavity of the hull ordering the waypoints")
	maxIterations = flag.Int("max_iterations", pkg.DEFAULT_MAX_ITERATIONS, "candidate routes per request")
	rateLimit     = flag.Bool("rate_limit", true, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	viper.AutomaticEnv()
	viper.SetDefault("API_TIMEOUT", "120s")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	roundtripEngine, err := engine.NewEngine(ctx, *pbfPath, *concavity, logger)
	if err != nil {
		logger.Fatal("can not build engine", zap.Error(err))
	}

	roundtripService := usecases.NewRoundtripService(logger, roundtripEngine, viper.GetDuration("API_TIMEOUT"),
		*maxIterations)

	api := http.NewServer(logger)
	if err := api.Use(ctx, *rateLimit, roundtripService); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Navigatorx Roundtrip Server Stopped")
}
