package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/agenthands/schemagraph/internal/core"
	"github.com/agenthands/schemagraph/internal/core/filter"
	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/agenthands/schemagraph/internal/core/regenerate"
	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/core/segment"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	Pipeline *core.Pipeline
	Logger   *zap.Logger
}

func NewServer(p *core.Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Pipeline: p, Logger: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/taxonomy", s.Taxonomy)
	r.POST("/topics", s.Topics)
	r.POST("/structure", s.Structure)
	r.POST("/filter", s.Filter)
	r.POST("/regenerate", s.Regenerate)
	r.POST("/process", s.Process)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

type TranscriptRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type TopicsResponse struct {
	Topics   *model.Topics   `json:"topics"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

type StructureResponse struct {
	Structured *model.StructuredDocument `json:"structured"`
	Summary    core.Summary              `json:"summary"`
}

type RegenerateResponse struct {
	Text string `json:"text"`
}

func (s *Server) Taxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, schema.Describe())
}

func (s *Server) Topics(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	topics, warnings, err := s.Pipeline.Segment(c.Request.Context(), req.Transcript)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, TopicsResponse{Topics: topics, Warnings: warnings})
}

func (s *Server) Structure(c *gin.Context) {
	var topics model.Topics
	if err := c.ShouldBindJSON(&topics); err != nil {
		badRequest(c, err)
		return
	}

	doc, summary, err := s.Pipeline.Structure(c.Request.Context(), &topics)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, StructureResponse{Structured: doc, Summary: summary})
}

func (s *Server) Filter(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	doc, err := filter.FilterJSON(body)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) Regenerate(c *gin.Context) {
	var doc model.FilteredDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		badRequest(c, err)
		return
	}

	text, err := s.Pipeline.Regenerate(c.Request.Context(), &doc)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RegenerateResponse{Text: text})
}

func (s *Server) Process(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.Pipeline.Run(c.Request.Context(), req.Transcript)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}

// fail maps pipeline errors to statuses: caller mistakes are 400, oracle
// failures 502, the rest 500.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, segment.ErrEmptyTranscript), errors.Is(err, regenerate.ErrEmptyDocument):
		status = http.StatusBadRequest
	case c.Request.Context().Err() != nil:
		status = http.StatusInternalServerError
	}
	s.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
