package http

import (
	"context"

	http_router "github.com/safecity/safecity-api/pkg/http/http-router"
	"github.com/safecity/safecity-api/pkg/http/http-router/controllers"
	http_server "github.com/safecity/safecity-api/pkg/http/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the HTTP API in the background. The listener is opened only after every
// dependency, the prediction table included, has been constructed.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,
	config http_server.Config,

	riskService controllers.RiskService,

) (*Server, error) {
	server := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(
			gctx, config, riskService,
		)
	})

	s.g = g
	return s, nil

}

// Wait blocks until the API stops, either because ctx was cancelled or the listener
// failed.
func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
