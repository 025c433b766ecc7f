package controllers

import "context"

type RoundtripService interface {
	Roundtrip(ctx context.Context, lat, lon, distanceKm float64, seed uint64) (float64, string, int, uint64, error)
}
