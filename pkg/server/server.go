// Package server exposes the solve pipeline and the run store over HTTP.
//
// # Routes
//
//	GET    /healthz                        liveness and build version
//	POST   /v1/solve                       solve a maze and store the run
//	GET    /v1/runs                        recent runs, newest first
//	GET    /v1/runs/{id}                   one stored run
//	DELETE /v1/runs/{id}                   forget a run
//	GET    /v1/runs/{id}/render.{format}   draw a stored run
//
// Errors are JSON objects {"code", "message", "request_id"} with the status
// that [errors.HTTPStatus] assigns to the code. A solve that finds no path
// is stored like any other run and answered with 422 and the report.
//
// [errors.HTTPStatus]: github.com/matzehuels/mazesearch/pkg/errors
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/store"
)

// Defaults for Config fields left zero.
const (
	DefaultAddr           = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultShutdownGrace  = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr           string
	RequestTimeout time.Duration
	ShutdownGrace  time.Duration
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.ShutdownGrace <= 0 {
		c.ShutdownGrace = DefaultShutdownGrace
	}
}

// Server is the HTTP API. It is safe for concurrent use; every request runs
// its own search.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	cfg    Config
	router chi.Router
}

// New creates a server that solves with runner and keeps runs in st.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	cfg.setDefaults()
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
		cfg:    cfg,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler, for embedding or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errs.New(errs.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorBody{
			Code:      errs.ErrCodeInvalidInput,
			Message:   "method not allowed",
			RequestID: middleware.GetReqID(r.Context()),
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(observe)

		r.Get("/healthz", s.handleHealth)
		r.Post("/v1/solve", s.handleSolve)
		r.Get("/v1/runs", s.handleListRuns)
		r.Get("/v1/runs/{id}", s.handleGetRun)
		r.Delete("/v1/runs/{id}", s.handleDeleteRun)
		r.Get("/v1/runs/{id}/render.{format}", s.handleRender)
	})
	return r
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "grace", s.cfg.ShutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
