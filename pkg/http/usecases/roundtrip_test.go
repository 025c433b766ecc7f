package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/roundtrip"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEngine struct {
	result *roundtrip.Result
	err    error
	query  engine.Query
	ctx    context.Context
}

func (f *fakeEngine) Roundtrip(ctx context.Context, q engine.Query) (*roundtrip.Result, error) {
	f.query = q
	f.ctx = ctx
	return f.result, f.err
}

func TestRoundtripAccepted(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(51.0, 7.0),
		geo.NewCoordinate(51.001, 7.001),
		geo.NewCoordinate(51.0, 7.0),
	}
	fe := &fakeEngine{result: &roundtrip.Result{
		Route:    roundtrip.Route{Coordinates: coords, Length: 1234.5},
		Attempts: make([]roundtrip.Attempt, 3),
	}}

	rs := NewRoundtripService(zap.NewNop(), fe, time.Minute, 50)
	dist, path, attempts, seed, err := rs.Roundtrip(context.Background(), 51.0, 7.0, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, 1234.5, dist)
	assert.Equal(t, geo.PolylineFromCoords(coords), path)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, uint64(7), seed)

	assert.Equal(t, engine.Query{Start: geo.NewCoordinate(51.0, 7.0), DistanceKm: 10, Seed: 7, MaxIterations: 50}, fe.query)
	_, hasDeadline := fe.ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestRoundtripTimeBasedSeed(t *testing.T) {
	fe := &fakeEngine{result: &roundtrip.Result{}}
	rs := NewRoundtripService(zap.NewNop(), fe, 0, 0)

	_, _, _, seed, err := rs.Roundtrip(context.Background(), 51.0, 7.0, 10, 0)
	require.NoError(t, err)
	assert.NotZero(t, seed)
	assert.Equal(t, seed, fe.query.Seed)

	_, hasDeadline := fe.ctx.Deadline()
	assert.False(t, hasDeadline)
}

func TestRoundtripErrors(t *testing.T) {
	testCases := []struct {
		name          string
		err           error
		unprocessable bool
	}{
		{
			name:          "exhausted",
			err:           util.WrapErrorf(nil, roundtrip.ErrNoFeasibleRoute, "no route accepted after 3 attempts"),
			unprocessable: true,
		},
		{
			name:          "deadline",
			err:           context.DeadlineExceeded,
			unprocessable: true,
		},
		{
			name:          "other",
			err:           errors.New("boom"),
			unprocessable: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			fe := &fakeEngine{result: &roundtrip.Result{Attempts: make([]roundtrip.Attempt, 3)}, err: tt.err}
			rs := NewRoundtripService(zap.NewNop(), fe, 0, 3)

			_, _, attempts, _, err := rs.Roundtrip(context.Background(), 51.0, 7.0, 10, 1)
			require.Error(t, err)
			assert.Equal(t, 3, attempts)
			assert.Equal(t, tt.unprocessable, errors.Is(err, util.ErrUnprocessable))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}
