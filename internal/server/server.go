package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core"
)

type Server struct {
	Paraphraser *core.Paraphraser
	cfg         *config.Config
	limiter     *rate.Limiter
}

func NewServer(p *core.Paraphraser, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	limit := rate.Inf
	if cfg.Server.RateLimit > 0 {
		limit = rate.Limit(cfg.Server.RateLimit)
	}

	return &Server{
		Paraphraser: p,
		cfg:         cfg,
		limiter:     rate.NewLimiter(limit, cfg.Server.RateLimitBurst),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		s.metricsMiddleware(),
		s.requestIDMiddleware(),
		s.loggingMiddleware(),
		s.recoveryMiddleware(),
		s.errorMiddleware(),
	)

	r.NoRoute(s.NotFound)
	r.NoMethod(s.MethodNotAllowed)

	r.GET("/ping", s.Ping)
	r.GET("/style", s.rateLimitMiddleware(), s.Style)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	sc := s.cfg.Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", sc.Port),
		Handler:      s.SetupRouter(),
		ReadTimeout:  time.Duration(sc.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(sc.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(sc.IdleTimeoutSeconds) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(sc.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()

		slog.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
