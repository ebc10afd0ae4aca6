package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/snarg/captiond/internal/config"
	"github.com/snarg/captiond/internal/metrics"
)

type Server struct {
	http *http.Server
	log  zerolog.Logger
}

func NewServer(cfg *config.Config, yt Fetcher, version string, startTime time.Time, log zerolog.Logger) *Server {
	r := NewRouter(cfg, yt, version, startTime, log)

	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log,
	}
}

// NewRouter assembles the middleware chain and route table.
func NewRouter(cfg *config.Config, yt Fetcher, version string, startTime time.Time, log zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(RequestID)
	r.Use(Recoverer)
	r.Use(Logger(log))
	r.Use(CORSWithOrigins(cfg.CORSOrigins))
	r.Use(metrics.InstrumentHandler)
	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Info, docs, health, metrics — no auth
	docs := NewDocsHandler(version)
	r.Get("/", docs.Root)
	r.Get("/docs", docs.Docs)
	r.Get("/openapi.yaml", docs.OpenAPI)
	r.Get("/health", NewHealthHandler(version, startTime).ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Transcript routes, behind the optional bearer token
	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.AuthToken))
		NewTranscriptHandler(yt, cfg.DefaultLanguageList()).Routes(r)
	})

	return r
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("http server starting")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.http.Shutdown(ctx)
}
