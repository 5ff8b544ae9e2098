package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/config"
	"github.com/alexiusacademia/gopurlin/internal/logger"
	"github.com/alexiusacademia/gopurlin/internal/version"
)

const shutdownTimeout = 10 * time.Second

// Server is the purlin design HTTP API
type Server struct {
	cfg     config.Server
	router  *mux.Router
	started time.Time
}

func New(cfg config.Server) *Server {
	s := &Server{
		cfg:     cfg,
		started: time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := mux.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	limiter := NewIPRateLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	sectionsH := &SectionsHandler{}
	api.HandleFunc("/sections", sectionsH.List).Methods("GET")
	api.HandleFunc("/sections/{table}", sectionsH.Table).Methods("GET")
	api.HandleFunc("/sections/{table}/{row}", sectionsH.Row).Methods("GET")

	purlinH := &PurlinHandler{}
	api.HandleFunc("/purlin/design", purlinH.Design).Methods("POST")
	api.HandleFunc("/purlin/report", purlinH.Report).Methods("POST")
	api.HandleFunc("/purlin/batch", purlinH.Batch).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, "not found", nil)
	})
	// a subrouter falls through to the parent's NotFoundHandler on a method
	// mismatch unless it has its own handler
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
	})
	r.MethodNotAllowedHandler = methodNotAllowed
	api.MethodNotAllowedHandler = methodNotAllowed

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":    "healthy",
		"version":   version.Get(),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"tables":    len(catalog.ListTables()),
		"requests":  logger.TotalRequests.Load(),
		"errors4xx": logger.Total4xxErrors.Load(),
		"errors5xx": logger.Total5xxErrors.Load(),
		"throttled": logger.Total429Errors.Load(),
	})
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
