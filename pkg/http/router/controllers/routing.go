package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/transitx/pkg"
	helper "github.com/lintang-b-s/transitx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	navigations := group.Group("/navigations")
	navigations.GET("/findRoute", api.findRoute)
	navigations.GET("/nearestStation", api.nearestStation)
	navigations.GET("/stats", api.stats)
}

// preference multiplier query params per transport mode name
var preferenceParams = []struct {
	mode  string
	param string
}{
	{pkg.METRO_NAME, "pref_metro"},
	{pkg.BUS_NAME, "pref_bus"},
	{pkg.TRAIN_NAME, "pref_train"},
}

func (api *routingAPI) findRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request findRouteRequest

	query := r.URL.Query()

	request.Start = query.Get("start")
	request.End = query.Get("end")
	request.Preferences = make(map[string]float64)

	for _, pref := range preferenceParams {
		raw := query.Get(pref.param)
		if raw == "" {
			continue
		}
		multiplier, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("%s must be a valid float", pref.param))
			return
		}
		request.Preferences[pref.mode] = multiplier
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	plan, legPolylines, found, err := api.routingService.FindRoute(request.Start,
		request.End, request.Preferences)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewFindRouteResponse(plan, legPolylines, found)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestStation(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestStationsRequest
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
	if raw := query.Get("radius"); raw != "" {
		request.Radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("radius must be a valid float"))
			return
		}
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	neighbors, err := api.routingService.NearestStations(request.Lat, request.Lon,
		request.Radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewNearestStationsResponse(neighbors)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) stats(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	stats := api.routingService.NetworkStats()

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewStatsResponse(stats)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
