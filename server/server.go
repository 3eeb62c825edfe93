package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mazepath/scenario"
	"github.com/katalvlaran/mazepath/search"
)

// Defaults for Config fields left zero.
const (
	DefaultMaxCells = 250_000
	DefaultMaxDelay = time.Second
)

// Config configures a Server.
type Config struct {
	// Logger receives one record per run. Nil discards.
	Logger *slog.Logger
	// Registry holds the server's metrics. Nil creates a private registry.
	Registry *prometheus.Registry
	// MaxCells bounds Height×Width of a requested grid.
	MaxCells int
	// MaxDelay bounds the per-step pacing delay of a request.
	MaxDelay time.Duration
}

// Server is the HTTP front end. Create it with New.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	busy    atomic.Bool
	engine  *gin.Engine
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = DefaultMaxCells
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}

	s := &Server{
		cfg:     cfg,
		log:     cfg.Logger,
		metrics: newMetrics(cfg.Registry),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	v1 := r.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.GET("/solve/stream", s.handleStream)
	v1.GET("/scenarios", s.handleScenarios)
	v1.GET("/scenarios/:name", s.handleScenario)
	s.engine = r

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Busy reports whether a search is running.
func (s *Server) Busy() bool { return s.busy.Load() }

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func abort(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, errorBody{Error: err.Error(), Code: code})
}

// acquire claims the single search slot. It writes the 409 itself.
func (s *Server) acquire(c *gin.Context) bool {
	if s.busy.CompareAndSwap(false, true) {
		return true
	}
	s.metrics.rejected.Inc()
	abort(c, http.StatusConflict, "busy", errors.New("a search is already running"))

	return false
}

func (s *Server) release() { s.busy.Store(false) }

// problem validates sc and applies the server limits.
func (s *Server) problem(c *gin.Context, sc *scenario.Scenario) (*scenario.Problem, bool) {
	p, err := sc.Problem()
	if err != nil {
		abort(c, http.StatusBadRequest, "invalid_scenario", err)
		return nil, false
	}
	if p.Grid.Size() > s.cfg.MaxCells {
		abort(c, http.StatusRequestEntityTooLarge, "grid_too_large",
			errors.New("grid exceeds the configured cell limit"))
		return nil, false
	}
	if p.Delay > s.cfg.MaxDelay {
		abort(c, http.StatusBadRequest, "delay_too_long",
			errors.New("delay exceeds "+s.cfg.MaxDelay.String()))
		return nil, false
	}

	return p, true
}

func outcome(res *search.Result, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case err != nil:
		return "error"
	case res.Found():
		return "found"
	default:
		return "not_found"
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "busy": s.Busy()})
}

func (s *Server) handleScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": scenario.Builtins()})
}

func (s *Server) handleScenario(c *gin.Context) {
	sc, err := scenario.Builtin(c.Param("name"))
	if err != nil {
		abort(c, http.StatusNotFound, "not_found", err)
		return
	}
	c.JSON(http.StatusOK, sc)
}
