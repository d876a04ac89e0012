package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/paraphrase/internal/core/model"
	"github.com/agenthands/paraphrase/internal/core/params"
	apperrors "github.com/agenthands/paraphrase/internal/errors"
)

// Ping is the liveness probe.
func (s *Server) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// Style paraphrases ?sentence= into ?n_output= alternatives, optionally
// bounded by ?max_len=.
func (s *Server) Style(c *gin.Context) {
	raw := params.Raw{
		Sentence: c.Query("sentence"),
		NOutput:  c.Query("n_output"),
		MaxLen:   c.Query("max_len"),
	}

	output, err := s.Paraphraser.Paraphrase(c.Request.Context(), raw)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, model.ParaphraseResult{Output: output})
}

func (s *Server) NotFound(c *gin.Context) {
	_ = c.Error(apperrors.New(apperrors.ErrCodeNotFound, "route not found: "+c.Request.URL.Path))
}

func (s *Server) MethodNotAllowed(c *gin.Context) {
	_ = c.Error(apperrors.New(apperrors.ErrCodeMethodNotAllowed, c.Request.Method+" not allowed on "+c.Request.URL.Path))
}
