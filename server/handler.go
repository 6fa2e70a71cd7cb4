package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delamyth/timecard/analyze"
	"github.com/delamyth/timecard/imaging"
	"github.com/delamyth/timecard/observability"
	"github.com/delamyth/timecard/timesheet"
)

// ProcessHandler wires the upload endpoint to the analyzer and the
// interpretation pipeline. The analyzer is the only external collaborator:
// its failures surface as errors; the pipeline itself always yields a summary.
type ProcessHandler struct {
	cfg         Config
	analyzer    analyze.Analyzer
	interpreter *timesheet.Interpreter
	log         observability.Logger
}

// NewProcessHandler constructs the handler.
func NewProcessHandler(cfg Config, analyzer analyze.Analyzer, interpreter *timesheet.Interpreter, log observability.Logger) *ProcessHandler {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &ProcessHandler{cfg: cfg, analyzer: analyzer, interpreter: interpreter, log: log}
}

// Process handles POST /process: multipart image in, timesheet summary out.
func (h *ProcessHandler) Process(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if file.Size > h.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("image exceeds %d bytes", h.cfg.MaxUploadBytes),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload", "detail": err.Error()})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, h.cfg.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload", "detail": err.Error()})
		return
	}
	if int64(len(data)) > h.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("image exceeds %d bytes", h.cfg.MaxUploadBytes),
		})
		return
	}

	normalized, err := imaging.Normalize(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image", "detail": err.Error()})
		return
	}

	input := imaging.ToInput(c.GetString(requestIDKey), normalized,
		analyze.WithLanguages(h.cfg.Languages...))
	analysis, err := h.analyzer.Analyze(c.Request.Context(), input)
	if err != nil {
		h.log.Error("analysis failed",
			observability.String("id", c.GetString(requestIDKey)),
			observability.Error("cause", err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "document analysis failed", "detail": err.Error()})
		return
	}

	summary := h.interpreter.Interpret(c.Request.Context(), analysis)
	c.JSON(http.StatusOK, summary)
}

// Health handles GET /healthz.
func (h *ProcessHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "analyzer": h.analyzer.Name()})
}
