package router_helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	router := httprouter.New()

	root := NewRouteGroup(router, "")
	root.GET("/zones", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	api := NewRouteGroup(router, "/api")
	api.GET("/city/:city_name", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		_, _ = w.Write([]byte(ps.ByName("city_name")))
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/zones", status: http.StatusNoContent},
		{path: "/api/city/andheri", status: http.StatusOK, body: "andheri"},
		{path: "/city/andheri", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rr.Body.String())
			}
		})
	}
}

func TestGroupPath(t *testing.T) {
	g := NewRouteGroup(httprouter.New(), "/api")
	assert.Equal(t, "/api/zones", g.path("/zones"))
	assert.Equal(t, "/api/", g.path("/"))
	assert.Equal(t, "/zones", NewRouteGroup(httprouter.New(), "").path("/zones"))
}
