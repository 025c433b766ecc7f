package osmparser

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type OsmReader struct {
	logger *zap.Logger
	procs  int
}

func NewOsmReader(logger *zap.Logger) *OsmReader {
	return &OsmReader{
		logger: logger,
		procs:  runtime.GOMAXPROCS(0),
	}
}

// Read scans the whole pbf file once and keeps every node, way and relation.
func (r *OsmReader) Read(ctx context.Context, mapFile string) (*OsmData, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can not open map file %s", mapFile)
	}
	defer f.Close()

	data, err := r.ReadFrom(ctx, f)
	if err != nil {
		return nil, err
	}

	r.logger.Sugar().Infof("read %s: %d nodes, %d ways, %d relations", mapFile,
		len(data.Nodes), len(data.Ways), len(data.Relations))
	return data, nil
}

func (r *OsmReader) ReadFrom(ctx context.Context, reader io.Reader) (*OsmData, error) {
	data := NewOsmData()

	scanner := osmpbf.New(ctx, reader, r.procs)
	defer scanner.Close()

	countNodes, countWays := 0, 0
	for scanner.Scan() {
		o := scanner.Object()
		data.Add(o)

		switch o.(type) {
		case *osm.Node:
			countNodes++
			if countNodes%500000 == 0 {
				r.logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes)
			}
		case *osm.Way:
			countWays++
			if countWays%50000 == 0 {
				r.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "can not decode map data")
	}
	return data, nil
}
