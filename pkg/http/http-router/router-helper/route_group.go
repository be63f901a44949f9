package router_helper

import (
	"net/http"
	"path"
	"time"

	"github.com/safecity/safecity-api/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers handlers under a common path prefix. every handler is
// instrumented with the request metrics labelled by its route pattern.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) path(p string) string {
	if g.prefix == "" {
		return p
	}
	joined := path.Join(g.prefix, p)
	if p == "/" || (len(p) > 1 && p[len(p)-1] == '/') {
		joined += "/"
	}
	return joined
}

func (g *RouteGroup) GET(p string, handle httprouter.Handle) {
	g.Handle(http.MethodGet, p, handle)
}

func (g *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	route := g.path(p)
	g.router.Handle(method, route, instrument(method, route, handle))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func instrument(method, route string, handle httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handle(rec, r, ps)
		metrics.RecordAPIRequest(method, route, rec.status, time.Since(start))
	}
}
