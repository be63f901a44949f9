package http_router

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/safecity/safecity-api/docs"
	"github.com/safecity/safecity-api/pkg/http/http-router/controllers"
	router_helper "github.com/safecity/safecity-api/pkg/http/http-router/router-helper"
	http_server "github.com/safecity/safecity-api/pkg/http/server"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Handler builds the router and middleware chain.
func (api *API) Handler(config http_server.Config, riskService controllers.RiskService) http.Handler {
	router := httprouter.New()

	corsOptions := cors.Options{ //nolint:gocritic // ignore
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	}
	if allowAll(config.AllowedOrigins) {
		// echo the request origin, "*" is not accepted by browsers together with credentials
		corsOptions.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsOptions.AllowedOrigins = config.AllowedOrigins
	}
	corsHandler := cors.New(corsOptions)

	group := router_helper.NewRouteGroup(router, "")

	riskRoutes := controllers.New(riskService, api.log)

	riskRoutes.Routes(group)
	router.NotFound = http.HandlerFunc(riskRoutes.NotFound)
	router.MethodNotAllowed = http.HandlerFunc(riskRoutes.MethodNotAllowed)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, api.recoverPanic,
		chimiddleware.RealIP, chimiddleware.Heartbeat("/healthz"), Logger(api.log)).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,

	riskService controllers.RiskService,
) error {
	api.log.Info("Run httprouter API")

	mainMwChain := api.Handler(config, riskService)

	srv := http_server.New(ctx, mainMwChain, config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil {
		return err
	}

	return nil
}
