package controllers

import (
	"fmt"
	"net/http"

	helper "github.com/safecity/safecity-api/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

const (
	routeCity           = "/city/:city_name"
	routeCityStatistics = "/city/:city_name/statistics"
)

type riskAPI struct {
	riskService RiskService
	log         *zap.Logger
	validate    *validator.Validate
	trans       ut.Translator
}

func New(riskService RiskService, log *zap.Logger) *riskAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &riskAPI{
		riskService: riskService,
		log:         log,
		validate:    validate,
		trans:       trans,
	}

}

func (api *riskAPI) Routes(group *helper.RouteGroup) {
	group.GET("/", api.home)
	group.GET("/zones", api.zones)
	group.GET(routeCity, api.city)
	group.GET(routeCityStatistics, api.cityStatistics)
	group.GET("/statistics", api.statistics)
}

// messageResponse model info
//
//	@Description	service banner.
type messageResponse struct {
	Message string `json:"message" example:"SafeCity API running"`
}

// cityRequest model info
//
//	@Description	city path parameter. matched against the prediction table ignoring case.
type cityRequest struct {
	CityName string `validate:"required"`
}

// home godoc
// @Summary		service banner.
// @Description	service banner, useful to check the API is up.
// @Tags			zones
// @ID home
// @Produce		application/json
// @Router			/ [get]
// @Success		200	{object}	messageResponse
func (api *riskAPI) home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, messageResponse{Message: "SafeCity API running"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// zones godoc
// @Summary		list every city prediction row.
// @Description	list every city prediction row with coordinates, risk zone and police needed, in stored order.
// @Tags			zones
// @ID zones
// @Produce		application/json
// @Router			/zones [get]
// @Success		200	{array}		riskquery.ZoneRecord
// @Failure		500	{object}	errorResponse
func (api *riskAPI) zones(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	results := api.riskService.Zones()

	if err := api.writeJSON(w, http.StatusOK, results, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// city godoc
// @Summary		get the prediction row of a city.
// @Description	get the first prediction row whose city matches city_name ignoring case. a missing city is reported in the body with status 200.
// @Tags			city
// @ID city
// @Param			city_name	path	string	true	"city name, case insensitive"
// @Produce		application/json
// @Router			/city/{city_name} [get]
// @Success		200	{object}	riskquery.CityDetail
// @Success		200	{object}	cityNotFoundResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *riskAPI) city(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	request, err := api.cityRequest(ps)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	result, err := api.riskService.CityByName(request.CityName)
	if err != nil {
		api.handleServiceError(w, r, routeCity, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, result, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// cityStatistics godoc
// @Summary		aggregate statistics of a city.
// @Description	row count, mean police needed, risk level and coordinates over every prediction row matching city_name ignoring case. a missing city is reported in the body with status 200.
// @Tags			city
// @ID city-statistics
// @Param			city_name	path	string	true	"city name, case insensitive"
// @Produce		application/json
// @Router			/city/{city_name}/statistics [get]
// @Success		200	{object}	riskquery.CityStatistics
// @Success		200	{object}	cityNotFoundResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *riskAPI) cityStatistics(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	request, err := api.cityRequest(ps)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	result, err := api.riskService.CityStatistics(request.CityName)
	if err != nil {
		api.handleServiceError(w, r, routeCityStatistics, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, result, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// statistics godoc
// @Summary		aggregate statistics of the whole prediction table.
// @Description	row count, distinct cities, mean police needed, most frequent high risk city and rows per risk zone.
// @Tags			statistics
// @ID statistics
// @Produce		application/json
// @Router			/statistics [get]
// @Success		200	{object}	riskquery.OverallStatistics
// @Failure		500	{object}	errorResponse
func (api *riskAPI) statistics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result := api.riskService.OverallStatistics()

	if err := api.writeJSON(w, http.StatusOK, result, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *riskAPI) cityRequest(ps httprouter.Params) (cityRequest, error) {
	request := cityRequest{CityName: ps.ByName("city_name")}
	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return request, fmt.Errorf("validation error: %v", vvString)
	}
	return request, nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
