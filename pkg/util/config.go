package util

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/spf13/viper"
)

// Config is the read-only runtime configuration of a roundtrip run.
type Config struct {
	Distance      int           `mapstructure:"distance"` // target travel distance in km
	StartLat      float64       `mapstructure:"start_lat"`
	StartLon      float64       `mapstructure:"start_lon"`
	Pbf           string        `mapstructure:"pbf"`
	Output        string        `mapstructure:"output"`
	MaxIterations int           `mapstructure:"max_iterations"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Seed          uint64        `mapstructure:"seed"`
	Concavity     float64       `mapstructure:"concavity"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("output", pkg.DEFAULT_OUTPUT_PATH)
	v.SetDefault("max_iterations", pkg.DEFAULT_MAX_ITERATIONS)
	v.SetDefault("timeout", "2m")
	v.SetDefault("seed", 0)
	v.SetDefault("concavity", pkg.DEFAULT_CONCAVITY)
}

// ReadConfig reads the config file at path (any format viper understands, toml in practice).
// Every key can be overridden with a ROUNDTRIP_ prefixed environment variable.
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	setConfigDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
	v.SetEnvPrefix("ROUNDTRIP")
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return nil, WrapErrorf(err, ErrBadParamInput, "can not read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrBadParamInput, "malformed config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Distance <= 0 {
		return WrapErrorf(nil, ErrBadParamInput, "distance must be positive, got %d", c.Distance)
	}
	if c.StartLat < -90 || c.StartLat > 90 {
		return WrapErrorf(nil, ErrBadParamInput, "start_lat out of range: %f", c.StartLat)
	}
	if c.StartLon < -180 || c.StartLon > 180 {
		return WrapErrorf(nil, ErrBadParamInput, "start_lon out of range: %f", c.StartLon)
	}
	if c.Pbf == "" {
		return WrapErrorf(nil, ErrBadParamInput, "pbf path is required")
	}
	if c.MaxIterations <= 0 {
		return WrapErrorf(nil, ErrBadParamInput, "max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Concavity <= 0 {
		return WrapErrorf(nil, ErrBadParamInput, "concavity must be positive, got %f", c.Concavity)
	}
	return nil
}
