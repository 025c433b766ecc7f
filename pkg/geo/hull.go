package geo

import (
	"github.com/golang/geo/s2"
)

// ConvexHull returns the indices of coords on their convex hull in counter-clockwise loop order.
// nil is returned when fewer than three distinct non-collinear coordinates exist, in which case
// s2 answers with a synthetic loop that does not map back to the input.
func ConvexHull(coords []Coordinate) []int {
	query := s2.NewConvexHullQuery()
	index := make(map[s2.Point]int, len(coords))
	for i, c := range coords {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
		if _, ok := index[p]; !ok {
			index[p] = i
		}
		query.AddPoint(p)
	}
	if len(index) < 3 {
		return nil
	}

	loop := query.ConvexHull()
	if loop.NumVertices() < 3 {
		return nil
	}

	hull := make([]int, 0, loop.NumVertices())
	for _, v := range loop.Vertices() {
		i, ok := index[v]
		if !ok {
			return nil
		}
		hull = append(hull, i)
	}
	return hull
}

type hullEdge struct {
	a, b *Point
}

/*
ConcaveHull. Park & Oh style concave hull. starts from the convex hull and repeatedly digs an edge (a,b)
towards its nearest interior point p as long as len(a,b) / min(len(a,p), len(p,b)) > concavity and the two
new edges do not cross the current hull. only the hull edge nearest to p may dig towards it. A smaller concavity follows the point cloud more tightly.

returns the indices of coords on the hull boundary in ring order, without repeating the first vertex.
ok is false when the hull is degenerate (fewer than 3 distinct points or all of them collinear).
*/
func ConcaveHull(coords []Coordinate, concavity float64) (ring []int, ok bool) {
	convex := ConvexHull(coords)
	if convex == nil {
		return nil, false
	}

	points := projectEquirectangular(coords)

	onHull := make(map[Coordinate]struct{}, len(convex))
	for _, i := range convex {
		onHull[coords[i]] = struct{}{}
	}

	// interior candidates, one per distinct coordinate
	interior := make([]*Point, 0, len(coords))
	seen := make(map[Coordinate]struct{}, len(coords))
	for i, c := range coords {
		if _, ok := onHull[c]; ok {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		interior = append(interior, points[i])
	}
	used := make([]bool, len(interior))

	queue := make([]hullEdge, 0, len(convex))
	for i := range convex {
		queue = append(queue, hullEdge{points[convex[i]], points[convex[(i+1)%len(convex)]]})
	}

	ring = make([]int, 0, len(convex)+len(interior))
	ring = append(ring, convex[0])
	done := make([]hullEdge, 0, len(convex)+len(interior))

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		candidate := -1
		best := 0.0
		for i, p := range interior {
			if used[i] {
				continue
			}
			d := distToSegment(p, e.a, e.b)
			if closerToOtherEdge(p, d, done, queue) {
				continue
			}
			if candidate == -1 || d < best {
				candidate = i
				best = d
			}
		}

		if candidate != -1 {
			p := interior[candidate]
			decision := min(dist(e.a, p), dist(p, e.b))
			if decision > EPS && dist(e.a, e.b)/decision > concavity &&
				!crossesHull(e.a, p, done, queue) && !crossesHull(p, e.b, done, queue) {
				used[candidate] = true
				queue = append([]hullEdge{{e.a, p}, {p, e.b}}, queue...)
				continue
			}
		}

		done = append(done, e)
		ring = append(ring, e.b.id)
	}

	// the last edge closes the loop back at the first vertex. the ring stays open: the tour puts
	// start at both ends, so first and last vertex are two distinct waypoints.
	ring = ring[:len(ring)-1]
	return ring, len(ring) >= 3
}

// closerToOtherEdge reports whether p lies nearer to another hull edge than d, so only the edge
// p is nearest to may dig towards it.
func closerToOtherEdge(p *Point, d float64, done, queue []hullEdge) bool {
	for _, e := range done {
		if distToSegment(p, e.a, e.b) < d {
			return true
		}
	}
	for _, e := range queue {
		if distToSegment(p, e.a, e.b) < d {
			return true
		}
	}
	return false
}

func crossesHull(a, b *Point, done, queue []hullEdge) bool {
	for _, e := range done {
		if intersect(a, b, e.a, e.b) {
			return true
		}
	}
	for _, e := range queue {
		if intersect(a, b, e.a, e.b) {
			return true
		}
	}
	return false
}
