package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `
distance = 20
start_lat = 51.4879
start_lon = 7.4484
pbf = "resources/dortmund_sued.osm.pbf"
timeout = "30s"
`)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Distance)
	assert.InDelta(t, 51.4879, cfg.StartLat, 1e-9)
	assert.InDelta(t, 7.4484, cfg.StartLon, 1e-9)
	assert.Equal(t, "resources/dortmund_sued.osm.pbf", cfg.Pbf)
	assert.Equal(t, "/tmp/result.gpx", cfg.Output)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.InDelta(t, 2.0, cfg.Concavity, 1e-9)
}

func TestReadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "zero distance",
			content: `
distance = 0
start_lat = 51.0
start_lon = 7.0
pbf = "a.osm.pbf"
`,
		},
		{
			name: "latitude out of range",
			content: `
distance = 10
start_lat = 91.0
start_lon = 7.0
pbf = "a.osm.pbf"
`,
		},
		{
			name: "missing pbf",
			content: `
distance = 10
start_lat = 51.0
start_lon = 7.0
`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadParamInput))
		})
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadParamInput))
}
