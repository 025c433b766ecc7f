package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-roundtrip/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type roundtripAPI struct {
	roundtripService RoundtripService
	log              *zap.Logger
	validate         *validator.Validate
	trans            ut.Translator
}

func New(roundtripService RoundtripService, log *zap.Logger) *roundtripAPI {
	validate, trans := newValidator()
	return &roundtripAPI{
		roundtripService: roundtripService,
		log:              log,
		validate:         validate,
		trans:            trans,
	}
}

func (api *roundtripAPI) Routes(group *helper.RouteGroup) {
	group.GET("/roundtrip", api.roundtrip)
}

func (api *roundtripAPI) roundtrip(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request roundtripRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.DistanceKm, err = strconv.ParseFloat(query.Get("distance_km"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("distance_km is required and must be a valid float"))
		return
	}
	if s := query.Get("seed"); s != "" {
		request.Seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("seed must be a non negative integer"))
			return
		}
	}

	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	dist, path, attempts, seed, err := api.roundtripService.Roundtrip(r.Context(), request.Lat, request.Lon,
		request.DistanceKm, request.Seed)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoundtripResponse(dist, path, attempts, seed)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
