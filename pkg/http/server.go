package http

import (
	"context"

	http_router "github.com/lintang-b-s/navigatorx-roundtrip/pkg/http/router"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navigatorx-roundtrip/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use serves the API until ctx is done. it blocks and returns the first error of the server goroutines.
func (s *Server) Use(
	ctx context.Context,
	useRateLimit bool,
	roundtripService controllers.RoundtripService,
) error {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "120s")
	viper.SetDefault("API_RATE_LIMIT_RPS", 5)
	viper.SetDefault("API_RATE_LIMIT_BURST", 10)

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	rl := http_router.RateLimit{
		Enabled: useRateLimit,
		RPS:     viper.GetFloat64("API_RATE_LIMIT_RPS"),
		Burst:   viper.GetInt("API_RATE_LIMIT_BURST"),
	}

	api := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return api.Run(gctx, config, rl, roundtripService)
	})

	return g.Wait()
}

