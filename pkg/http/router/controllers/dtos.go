package controllers

type roundtripRequest struct {
	Lat        float64 `json:"lat" validate:"min=-90,max=90"`
	Lon        float64 `json:"lon" validate:"min=-180,max=180"`
	DistanceKm float64 `json:"distance_km" validate:"required,gt=0,lte=500"`
	Seed       uint64  `json:"seed"`
}

type roundtripResponse struct {
	Dist     float64 `json:"distance"`
	Path     string  `json:"path"`
	Attempts int     `json:"attempts"`
	Seed     uint64  `json:"seed"`
}

func NewRoundtripResponse(dist float64, path string, attempts int, seed uint64) roundtripResponse {
	return roundtripResponse{
		Dist:     dist,
		Path:     path,
		Attempts: attempts,
		Seed:     seed,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
