package geo

import "github.com/twpayne/go-polyline"

// PolylineFromCoords encodes coords with the google encoded polyline algorithm (precision 5).
func PolylineFromCoords(coords []Coordinate) string {
	pcoords := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pcoords = append(pcoords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(pcoords))
}

func CoordsFromPolyline(encoded string) ([]Coordinate, error) {
	pcoords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, 0, len(pcoords))
	for _, c := range pcoords {
		coords = append(coords, NewCoordinate(c[0], c[1]))
	}
	return coords, nil
}
