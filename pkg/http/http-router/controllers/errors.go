package controllers

import (
	"net/http"

	"github.com/safecity/safecity-api/pkg"
	"github.com/safecity/safecity-api/pkg/metrics"

	"go.uber.org/zap"
)

const MessageCityNotFound = "City not found"

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// cityNotFoundResponse model info
//
//	@Description	returned with status 200 when no prediction row matches the city name.
type cityNotFoundResponse struct {
	Error string `json:"error" example:"City not found"`
}

func (api *riskAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed", zap.Error(err), zap.String("method", r.Method),
		zap.String("url", r.URL.String()))
}

func (api *riskAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	var res errorResponse
	res.Error.Code = code
	res.Error.Message = message

	if err := api.writeJSON(w, status, res, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *riskAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", pkg.MessageInternalServerError)
}

func (api *riskAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

// cityNotFound is a normal response, not an error status.
func (api *riskAPI) cityNotFound(w http.ResponseWriter, r *http.Request) {
	if err := api.writeJSON(w, http.StatusOK, cityNotFoundResponse{Error: MessageCityNotFound}, nil); err != nil {
		api.logError(r, err)
	}
}

// handleServiceError maps a coded service error to its response.
func (api *riskAPI) handleServiceError(w http.ResponseWriter, r *http.Request, route string, err error) {
	switch pkg.ErrorCode(err) {
	case pkg.ErrNotFound:
		metrics.RecordCityLookupMiss(route)
		api.cityNotFound(w, r)
	case pkg.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

// NotFound and MethodNotAllowed are installed on the router for unknown routes.
func (api *riskAPI) NotFound(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "NOT_FOUND", "the requested resource could not be found")
}

func (api *riskAPI) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
		"the "+r.Method+" method is not supported for this resource")
}
