// Package server exposes the indicator runner over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/metrics"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Server serves the indicator catalog and computes indicators on request.
type Server struct {
	config    config.ServerConfig
	precision int32
	catalog   *indicator.Catalog
	runner    *indicator.Runner
	logger    *logger.Logger
	metrics   *metrics.Recorder
	router    *mux.Router

	httpServer *http.Server
	listener   net.Listener
}

// New creates a server for cfg. runner computes every request; catalog backs
// the discovery endpoints.
func New(cfg *config.Config, catalog *indicator.Catalog, runner *indicator.Runner, log *logger.Logger, recorder *metrics.Recorder) *Server {
	s := &Server{
		config:    cfg.Server,
		precision: cfg.Precision(),
		catalog:   catalog,
		runner:    runner,
		logger:    log.Named("server"),
		metrics:   recorder,
	}

	s.router = s.routes()

	return s
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestID, s.instrument)

	api := router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/indicators", s.handleListIndicators).Methods(http.MethodGet)
	api.HandleFunc("/indicators/{type}/schema", s.handleSchema).Methods(http.MethodGet)
	api.HandleFunc("/compute", s.handleCompute).Methods(http.MethodPost)
	api.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)

	if s.metrics != nil {
		router.Handle(s.config.MetricsPath, s.metrics.Handler()).Methods(http.MethodGet)
	}

	return router
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on address and serves in the background.
// If address is empty the configured address is used; ":0" picks a free port.
func (s *Server) Start(address string) error {
	if address == "" {
		address = s.config.Addr
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to listen on %s", address)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	s.logger.Info("HTTP server listening", zap.String("addr", listener.Addr().String()))

	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight requests
// until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Run starts the server and blocks until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(""); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return s.Stop(shutdownCtx)
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}
