package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/umputun/meteoscope/pkg/domain"
	"github.com/umputun/meteoscope/pkg/feed"
	"github.com/umputun/meteoscope/pkg/service"
)

//go:generate moq -out mocks/weather_service.go -pkg mocks -skip-ensure -fmt goimports . WeatherService

// Server represents HTTP server instance
type Server struct {
	cfg       Config
	weather   WeatherService
	generator *feed.Generator
	limiter   *rate.Limiter
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// WeatherService provides weather data, source health and fetch triggers
type WeatherService interface {
	Forecast(ctx context.Context, region string) (service.RegionForecast, error)
	ActiveAlerts(ctx context.Context, filter domain.AlertFilter) (service.AlertList, error)
	AlertCounts(ctx context.Context) (service.AlertCounts, error)
	Regions(ctx context.Context) ([]string, error)
	SearchRegions(ctx context.Context, query string) ([]string, error)
	Status(ctx context.Context) (domain.SystemStatus, error)
	Sources(ctx context.Context) (service.SourcesReport, error)
	Health(ctx context.Context) service.HealthReport
	TriggerFetch(source string) error
	TriggerAll() map[string]error
	Results() []domain.CycleResult
}

// Config defines server parameters
type Config struct {
	Listen       string
	Timeout      time.Duration
	BaseURL      string
	TriggerLimit time.Duration // minimal interval between manual triggers, zero disables limiting
	Clock        clockwork.Clock
}

// New initializes a new server instance
func New(cfg Config, weather WeatherService, version string, debug bool) *Server {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	limit := rate.Inf
	if cfg.TriggerLimit > 0 {
		limit = rate.Every(cfg.TriggerLimit)
	}
	s := &Server{
		cfg:       cfg,
		weather:   weather,
		generator: feed.NewGenerator(cfg.BaseURL),
		limiter:   rate.NewLimiter(limit, 2),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.cfg.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.Timeout,
		WriteTimeout:      s.cfg.Timeout,
		IdleTimeout:       30 * time.Second,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("meteoscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, no endpoint takes a body
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /regions", s.regionsHandler)
		r.HandleFunc("GET /regions/search", s.searchRegionsHandler)
		r.HandleFunc("GET /forecast", s.forecastHandler)
		r.HandleFunc("GET /forecast/{region}", s.forecastHandler)
		r.HandleFunc("GET /alerts", s.alertsHandler)
		r.HandleFunc("GET /alerts/count", s.alertCountsHandler)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("POST /fetch", s.limitTriggers(s.fetchAllHandler))
		r.HandleFunc("POST /fetch/{source}", s.limitTriggers(s.fetchSourceHandler))
		r.HandleFunc("GET /fetch/results", s.fetchResultsHandler)
		r.HandleFunc("GET /health", s.healthHandler)
	})

	s.router.HandleFunc("GET /rss/alerts", s.rssAlertsHandler)
	s.router.Handle("GET /metrics", promhttp.Handler())
}

// limitTriggers rejects manual triggers coming faster than the configured limit
func (s *Server) limitTriggers(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(s.cfg.TriggerLimit.Seconds())+1))
			renderError(w, r, errors.New("too many fetch triggers"), http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
