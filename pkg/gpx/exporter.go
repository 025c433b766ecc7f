package gpx

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
	gpxgo "github.com/tkrajina/gpxgo/gpx"
	"go.uber.org/zap"
)

const BZIP2_EXTENSION = ".bz2"

// Exporter writes a route as a single named GPX 1.1 route.
type Exporter struct {
	logger *zap.Logger
}

func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

func (e *Exporter) Encode(route []geo.Coordinate) ([]byte, error) {
	doc := &gpxgo.GPX{
		Version: "1.1",
		Creator: pkg.GPX_CREATOR,
		Routes: []gpxgo.GPXRoute{
			{
				Name:   pkg.GPX_ROUTE_NAME,
				Points: make([]gpxgo.GPXPoint, 0, len(route)),
			},
		},
	}
	for _, c := range route {
		doc.Routes[0].Points = append(doc.Routes[0].Points, gpxgo.GPXPoint{
			Point: gpxgo.Point{Latitude: c.Lat, Longitude: c.Lon},
		})
	}

	data, err := doc.ToXml(gpxgo.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "can not encode gpx")
	}
	return data, nil
}

// Write encodes route into path. a path ending in .bz2 is bzip2 compressed.
func (e *Exporter) Write(path string, route []geo.Coordinate) error {
	data, err := e.Encode(route)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "can not create %s", path)
	}
	defer f.Close()

	if err := writeTo(f, data, strings.HasSuffix(path, BZIP2_EXTENSION)); err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "can not write %s", path)
	}

	e.logger.Info("gpx written", zap.String("path", path), zap.Int("points", len(route)))
	return nil
}

func writeTo(f io.Writer, data []byte, compress bool) error {
	if !compress {
		w := bufio.NewWriter(f)
		if _, err := w.Write(data); err != nil {
			return err
		}
		return w.Flush()
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if _, err := bz.Write(data); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

// Read parses a GPX file written by Write and returns the points of its first route.
func Read(path string) ([]geo.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, BZIP2_EXTENSION) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := gpxgo.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if len(doc.Routes) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "%s has no route", path)
	}

	coords := make([]geo.Coordinate, 0, len(doc.Routes[0].Points))
	for _, p := range doc.Routes[0].Points {
		coords = append(coords, geo.NewCoordinate(p.Latitude, p.Longitude))
	}
	return coords, nil
}
