package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/agenthands/paraphrase/internal/errors"
)

// InvalidAPIUsageName is reported as the error name for client-input errors.
const InvalidAPIUsageName = "InvalidAPIUsage"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var statusDescriptions = map[int]string{
	http.StatusNotFound:            "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again.",
	http.StatusMethodNotAllowed:    "The method is not allowed for the requested URL.",
	http.StatusTooManyRequests:     "This user has exceeded an allotted request count. Try again later.",
	http.StatusInternalServerError: "The server encountered an internal error and was unable to complete your request. Either the server is overloaded or there is an error in the application.",
	http.StatusServiceUnavailable:  "The server is temporarily unable to service your request due to maintenance downtime or capacity problems. Please try again later.",
}

// errorResponse maps err to a status and body. Client-input errors carry
// their own message; everything else gets the generic text for its status so
// no internal detail leaks.
func errorResponse(err error) (int, ErrorResponse) {
	if se, ok := apperrors.As(err); ok && se.IsClientError() {
		status := se.HTTPStatus()
		return status, ErrorResponse{
			Code:        status,
			Name:        InvalidAPIUsageName,
			Description: se.Message,
		}
	}

	status := apperrors.HTTPStatus(err)
	desc, ok := statusDescriptions[status]
	if !ok {
		desc = http.StatusText(status)
	}
	return status, ErrorResponse{
		Code:        status,
		Name:        http.StatusText(status),
		Description: desc,
	}
}

// errorMiddleware renders the last error a handler attached with c.Error.
func (s *Server) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := errorResponse(err)

		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"requestID", c.GetString(requestIDKey),
				"path", c.Request.URL.Path,
				"status", status,
				"error", err.Error(),
			)
		} else {
			slog.Debug("request rejected",
				"requestID", c.GetString(requestIDKey),
				"path", c.Request.URL.Path,
				"status", status,
				"error", err.Error(),
			)
		}

		c.AbortWithStatusJSON(status, body)
	}
}
