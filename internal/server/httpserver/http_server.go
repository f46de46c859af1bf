// Package httpserver wires the SportCal HTTP endpoints onto their listeners.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sportcal/internal/config"
	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
	"git.home.luguber.info/inful/sportcal/internal/metrics"
	"git.home.luguber.info/inful/sportcal/internal/server/handlers"
	smw "git.home.luguber.info/inful/sportcal/internal/server/middleware"
	"git.home.luguber.info/inful/sportcal/internal/service"
)

// Server manages the API and admin HTTP endpoints.
type Server struct {
	apiServer   *http.Server
	adminServer *http.Server
	cfg         *config.Config

	exerciseHandlers   *handlers.ExerciseHandlers
	monitoringHandlers *handlers.MonitoringHandlers

	registry *prom.Registry
	mchain   func(http.Handler) http.Handler
}

// New constructs the HTTP server wiring.
func New(cfg *config.Config, svc *service.ExerciseService, recorder metrics.Recorder, registry *prom.Registry) *Server {
	s := &Server{
		cfg:                cfg,
		exerciseHandlers:   handlers.NewExerciseHandlers(svc),
		monitoringHandlers: handlers.NewMonitoringHandlers(time.Now()),
		registry:           registry,
	}
	s.mchain = smw.Chain(slog.Default(), ferrors.NewHTTPErrorAdapter(slog.Default()), recorder)
	return s
}

// Start pre-binds all required ports so startup fails fast with aggregate
// errors instead of logging independent 'address already in use' lines after
// partial initialization, then launches both servers.
func (s *Server) Start(ctx context.Context) error {
	type preBind struct {
		name string
		port int
		ln   net.Listener
	}
	binds := []preBind{
		{name: "api", port: s.cfg.HTTP.Port},
		{name: "admin", port: s.cfg.HTTP.AdminPort},
	}

	var bindErrs []error
	lc := net.ListenConfig{}
	for i := range binds {
		addr := fmt.Sprintf(":%d", binds[i].port)
		ln, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			bindErrs = append(bindErrs, fmt.Errorf("%s port %d: %w", binds[i].name, binds[i].port, err))
			continue
		}
		binds[i].ln = ln
	}
	if len(bindErrs) > 0 {
		for _, b := range binds {
			if b.ln != nil {
				_ = b.ln.Close()
			}
		}
		return fmt.Errorf("http startup failed: %w", errors.Join(bindErrs...))
	}

	s.apiServer = &http.Server{
		Handler:           s.mchain(s.apiMux()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.adminServer = &http.Server{
		Handler:           s.mchain(s.adminMux()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.startServerWithListener("api", s.apiServer, binds[0].ln)
	s.startServerWithListener("admin", s.adminServer, binds[1].ln)

	slog.Info("HTTP servers started",
		slog.Int("api_port", s.cfg.HTTP.Port),
		slog.Int("admin_port", s.cfg.HTTP.AdminPort))
	return nil
}

// Stop gracefully shuts down both HTTP servers.
func (s *Server) Stop(ctx context.Context) error {
	var errs []error

	if s.adminServer != nil {
		if err := s.adminServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("admin server shutdown: %w", err))
		}
	}
	if s.apiServer != nil {
		if err := s.apiServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	slog.Info("HTTP servers stopped")
	return nil
}

// apiMux routes the public exercise API.
func (s *Server) apiMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /exercises", s.exerciseHandlers.HandleList)
	mux.HandleFunc("GET /exercises/daily-summary", s.exerciseHandlers.HandleDailySummary)
	mux.HandleFunc("POST /exercises", s.exerciseHandlers.HandleCreate)
	mux.HandleFunc("PATCH /exercises/{id}/progress", s.exerciseHandlers.HandleUpdateProgress)
	mux.HandleFunc("GET /health", s.monitoringHandlers.HandleHealth)
	return mux
}

// adminMux routes operational endpoints kept off the public port.
func (s *Server) adminMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", s.monitoringHandlers.HandleStatus)
	mux.HandleFunc("GET /health", s.monitoringHandlers.HandleHealth)
	if s.registry != nil {
		mux.Handle("GET /metrics", metrics.HTTPHandler(s.registry))
	}
	return mux
}

// startServerWithListener launches an http.Server on a pre-bound listener.
func (s *Server) startServerWithListener(kind string, srv *http.Server, ln net.Listener) {
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error(fmt.Sprintf("%s server error", kind), "error", err)
		}
	}()
}
