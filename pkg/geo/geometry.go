package geo

import (
	"math"

	"github.com/lintang-b-s/navigatorx-roundtrip/pkg/util"
)

const (
	EPS = 1e-12
)

// Point is a planar point, x = projected longitude, y = latitude.
type Point struct {
	x, y float64
	id   int
}

func NewPoint(x, y float64) *Point {
	return &Point{x, y, 0}
}

func newIndexedPoint(x, y float64, id int) *Point {
	return &Point{x, y, id}
}

func (p *Point) GetX() float64 {
	return p.x
}

func (p *Point) GetY() float64 {
	return p.y
}

func (p *Point) GetID() int {
	return p.id
}

// projectEquirectangular maps coords to planar points around their mean latitude, so that
// distances between the points are roughly proportional to real distances.
func projectEquirectangular(coords []Coordinate) []*Point {
	meanLat := 0.0
	for _, c := range coords {
		meanLat += c.Lat
	}
	if len(coords) > 0 {
		meanLat /= float64(len(coords))
	}
	k := math.Cos(util.DegreeToRadians(meanLat))

	points := make([]*Point, len(coords))
	for i, c := range coords {
		points[i] = newIndexedPoint(c.Lon*k, c.Lat, i)
	}
	return points
}

type Vector struct {
	x, y float64
}

func NewVector(x, y float64) *Vector {
	return &Vector{x, y}
}

func toVec(a, b *Point) *Vector {
	return NewVector(b.x-a.x, b.y-a.y)
}

// cross product of two vectors a and b
func cross(a, b *Vector) float64 {
	return a.x*b.y - a.y*b.x
}

// return dot product of two vectors a and b
func dot(a, b *Vector) float64 {
	return a.x*b.x + a.y*b.y
}

func normSq(v *Vector) float64 {
	return v.x*v.x + v.y*v.y
}

func dist(a, b *Point) float64 {
	return math.Sqrt(normSq(toVec(a, b)))
}

func samePoint(a, b *Point) bool {
	return math.Abs(a.x-b.x) < EPS && math.Abs(a.y-b.y) < EPS
}

func dir(p, q, r *Point) int {

	if samePoint(p, q) || samePoint(p, r) || samePoint(q, r) {
		return 0
	}

	x := cross(toVec(p, r), toVec(p, q))
	if math.Abs(x) < EPS {
		return 0
	}

	if x > 0 {
		return 1
	}
	return -1
}

// check wether line segments (ab) and (pq) cross in exactly one point that is not an endpoint
func intersect(a, b, p, q *Point) bool {

	if dir(a, b, p) == 0 {
		return false
	}
	if dir(a, b, q) == 0 {
		return false
	}

	if dir(p, q, a) == 0 {
		return false
	}
	if dir(p, q, b) == 0 {
		return false
	}

	if dir(a, b, p) == dir(a, b, q) {
		return false
	}
	if dir(p, q, a) == dir(p, q, b) {
		return false
	}

	return true
}

// distToSegment. shortest distance between point p and line segment (ab)
func distToSegment(p, a, b *Point) float64 {
	ab := toVec(a, b)
	lenSq := normSq(ab)
	if lenSq < EPS {
		return dist(p, a)
	}
	t := dot(toVec(a, p), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	proj := NewPoint(a.x+t*ab.x, a.y+t*ab.y)
	return dist(p, proj)
}
