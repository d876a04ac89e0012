package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/agenthands/paraphrase/internal/errors"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-Id"
)

// requestIDMiddleware echoes a valid client request id or generates one.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

// rateLimitMiddleware rejects requests beyond the configured rate.
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow() {
			rateLimitRejects.Inc()
			c.Header("Retry-After", "1")
			_ = c.Error(apperrors.New(apperrors.ErrCodeRateLimitExceeded, "rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// recoveryMiddleware turns handler panics into a 500 JSON response.
func (s *Server) recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		panicRecoveries.Inc()
		slog.Error("panic recovered",
			"error", fmt.Sprintf("%v", recovered),
			"requestID", c.GetString(requestIDKey),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		status, body := errorResponse(apperrors.New(apperrors.ErrCodeInternal, "panic"))
		c.AbortWithStatusJSON(status, body)
	})
}

// loggingMiddleware logs one line per completed request.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "request completed",
			"requestID", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
