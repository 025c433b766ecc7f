package roundtrip

import (
	"errors"
	"math"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/geo"
)

var (
	ErrOpenLoop          = errors.New("route does not end where it starts")
	ErrBacktracking      = errors.New("route repeats too many consecutive points")
	ErrLengthOutOfBounds = errors.New("route length outside of tolerance")
)

// Verdict is the outcome of validating one candidate polyline. Reason is nil for an accepted route.
type Verdict struct {
	Length        float64 // meter
	DistinctRatio float64
	Points        int
	Reason        error
}

func (v Verdict) Accepted() bool {
	return v.Reason == nil
}

// DistinctRatio returns the share of points left after collapsing runs of identical consecutive points.
func DistinctRatio(coords []geo.Coordinate) float64 {
	if len(coords) == 0 {
		return 0
	}
	distinct := 1
	for i := 1; i < len(coords); i++ {
		if coords[i] != coords[i-1] {
			distinct++
		}
	}
	return float64(distinct) / float64(len(coords))
}

// Validate checks closure, repetition and length of a candidate, in that order.
func Validate(coords []geo.Coordinate, targetMeters float64, minDistinctRatio, lengthTolerance float64) Verdict {
	v := Verdict{
		Length:        geo.PolylineLength(coords),
		DistinctRatio: DistinctRatio(coords),
		Points:        len(coords),
	}

	switch {
	case len(coords) == 0 || coords[0] != coords[len(coords)-1]:
		v.Reason = ErrOpenLoop
	case v.DistinctRatio < minDistinctRatio:
		v.Reason = ErrBacktracking
	case math.Abs(v.Length-targetMeters) > lengthTolerance*targetMeters:
		v.Reason = ErrLengthOutOfBounds
	}
	return v
}
