package http_router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/safecity/safecity-api/pkg/dataset"
	"github.com/safecity/safecity-api/pkg/datastructure"
	http_server "github.com/safecity/safecity-api/pkg/http/server"
	"github.com/safecity/safecity-api/pkg/http/usecases"
	"github.com/safecity/safecity-api/pkg/riskquery"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T, origins []string) http.Handler {
	t.Helper()
	table := dataset.NewTable([]datastructure.CityRecord{
		datastructure.NewCityRecord("Andheri", 19.12, 72.85, datastructure.RiskHigh, 5),
		datastructure.NewCityRecord("Andheri", 19.12, 72.85, datastructure.RiskHigh, 7),
		datastructure.NewCityRecord("Borivali", 19.23, 72.86, datastructure.RiskLow, 2),
	})
	log := zap.NewNop()
	svc := usecases.New(log, riskquery.NewRiskQuery(table))

	cfg := http_server.Config{Port: 8000, Timeout: time.Second, AllowedOrigins: origins}
	return NewAPI(log).Handler(cfg, svc)
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	}
	return rr, body
}

func TestHome(t *testing.T) {
	rr, body := doGet(t, newTestHandler(t, nil), "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{"message": "SafeCity API running"}, body)
}

func TestZones(t *testing.T) {
	h := newTestHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/zones", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var zones []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &zones))
	require.Len(t, zones, 3)

	assert.Equal(t, map[string]interface{}{
		"City":          "Andheri",
		"latitude":      19.12,
		"longitude":     72.85,
		"risk_zone":     "High",
		"police_needed": float64(5),
	}, zones[0])
	assert.Equal(t, "Borivali", zones[2]["City"])
}

func TestCity(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, name := range []string{"andheri", "ANDHERI", "Andheri"} {
		t.Run(name, func(t *testing.T) {
			rr, body := doGet(t, h, "/city/"+name)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, map[string]interface{}{
				"city":          "Andheri",
				"latitude":      19.12,
				"longitude":     72.85,
				"risk_zone":     "High",
				"police_needed": float64(5),
			}, body)
		})
	}

	t.Run("not found is a 200 payload", func(t *testing.T) {
		rr, body := doGet(t, h, "/city/Dadar")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]interface{}{"error": "City not found"}, body)
	})

	t.Run("escaped path segment", func(t *testing.T) {
		rr, body := doGet(t, h, "/city/New%20Borivali")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "City not found", body["error"])
	})

	t.Run("very long name is a normal miss", func(t *testing.T) {
		name := strings.Repeat("x", 513)
		for _, path := range []string{"/city/" + name, "/city/" + name + "/statistics"} {
			rr, body := doGet(t, h, path)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, map[string]interface{}{"error": "City not found"}, body)
		}
	})
}

func TestCityStatistics(t *testing.T) {
	h := newTestHandler(t, nil)

	rr, body := doGet(t, h, "/city/andheri/statistics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{
		"city":                  "andheri",
		"total_incidents":       float64(2),
		"average_police_needed": 6.0,
		"risk_level":            "High",
		"latitude":              19.12,
		"longitude":             72.85,
	}, body)

	rr, body = doGet(t, h, "/city/Colaba/statistics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{"error": "City not found"}, body)
}

func TestStatistics(t *testing.T) {
	rr, body := doGet(t, newTestHandler(t, nil), "/statistics")
	assert.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, float64(3), body["total_incidents"])
	assert.Equal(t, float64(2), body["total_cities"])
	assert.InDelta(t, 14.0/3.0, body["average_police_per_incident"], 1e-9)
	assert.Equal(t, "Andheri", body["highest_risk_city"])
	assert.Equal(t, map[string]interface{}{
		"High":   float64(2),
		"Medium": float64(0),
		"Low":    float64(1),
	}, body["cities_by_risk"])
}

func TestStatisticsNullHighestRiskCity(t *testing.T) {
	table := dataset.NewTable([]datastructure.CityRecord{
		datastructure.NewCityRecord("Borivali", 19.23, 72.86, datastructure.RiskLow, 2),
	})
	log := zap.NewNop()
	h := NewAPI(log).Handler(http_server.Config{Port: 8000, Timeout: time.Second},
		usecases.New(log, riskquery.NewRiskQuery(table)))

	_, body := doGet(t, h, "/statistics")
	v, ok := body["highest_risk_city"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestOperationalRoutes(t *testing.T) {
	h := newTestHandler(t, nil)

	t.Run("healthz", func(t *testing.T) {
		rr, _ := doGet(t, h, "/healthz")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, ".", rr.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		doGet(t, h, "/zones")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "safecity_api_requests_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		rr, body := doGet(t, h, "/predict")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, body, "error")
	})

	t.Run("method not allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/zones", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestCORS(t *testing.T) {
	t.Run("any origin with credentials", func(t *testing.T) {
		h := newTestHandler(t, []string{"*"})
		req := httptest.NewRequest(http.MethodGet, "/zones", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight allows any header", func(t *testing.T) {
		h := newTestHandler(t, nil)
		req := httptest.NewRequest(http.MethodOptions, "/statistics", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, "https://dashboard.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		h := newTestHandler(t, []string{"http://localhost:3000"})
		req := httptest.NewRequest(http.MethodGet, "/zones", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("recover panic", func(t *testing.T) {
		api := NewAPI(zap.NewNop())
		h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/zones", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})

	t.Run("access log uses forwarded client ip", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		log := zap.New(core)
		table := dataset.NewTable([]datastructure.CityRecord{
			datastructure.NewCityRecord("Borivali", 19.23, 72.86, datastructure.RiskLow, 2),
		})
		h := NewAPI(log).Handler(http_server.Config{Port: 8000, Timeout: time.Second},
			usecases.New(log, riskquery.NewRiskQuery(table)))

		req := httptest.NewRequest(http.MethodGet, "/zones", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/statistics", nil)
		req.Header.Set("X-Real-IP", "198.51.100.4")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 1, logs.FilterField(zap.String("remote_ip", "203.0.113.7")).Len())
		assert.Equal(t, 1, logs.FilterField(zap.String("remote_ip", "198.51.100.4")).Len())
	})

	t.Run("heartbeat answers before the router", func(t *testing.T) {
		h := newTestHandler(t, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("logger counts bytes", func(t *testing.T) {
		h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "hello")
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "hello", rr.Body.String())
	})
}
