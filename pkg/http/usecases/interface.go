package usecases

import (
	"context"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/engine"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/roundtrip"
)

type RoundtripEngine interface {
	Roundtrip(ctx context.Context, q engine.Query) (*roundtrip.Result, error)
}
