package controllers

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

// writeJSON marshals data structure to encoded JSON response.
func (api *riskAPI) writeJSON(w http.ResponseWriter, status int, data interface{},
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}
