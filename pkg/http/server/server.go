package http_server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port    int           `validate:"min=1,max=65535"`
	Timeout time.Duration `validate:"gt=0"`

	// "*" or an empty list allows every origin
	AllowedOrigins []string
}

type Server struct {
	ctx context.Context
	srv *http.Server
}

func New(ctx context.Context, handler http.Handler, config Config) *Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           http.TimeoutHandler(handler, config.Timeout, `{"error":"request timeout"}`),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout + time.Second,
		IdleTimeout:       2 * config.Timeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	return &Server{ctx: ctx, srv: srv}
}

// ListenAndServe blocks until ctx is cancelled or the listener fails. On cancellation
// in-flight requests are given up to 10 seconds to finish.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Server) Serve(ln net.Listener) error {
	errC := make(chan error, 1)
	go func() {
		errC <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error when shutting down http server: %w", err)
	}

	if err := <-errC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
