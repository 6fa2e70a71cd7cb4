// Package server is the HTTP shell around the interpretation pipeline: it
// accepts an image upload, invokes the configured document analyzer, and
// returns the interpreted summary as JSON.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/delamyth/timecard/analyze"
	"github.com/delamyth/timecard/observability"
	"github.com/delamyth/timecard/timesheet"
)

// NewRouter assembles the gin engine with the standard middleware chain.
func NewRouter(cfg Config, analyzer analyze.Analyzer, log observability.Logger) *gin.Engine {
	if log == nil {
		log = observability.NopLogger{}
	}
	interpreter := timesheet.New(timesheet.WithLogger(log))
	h := NewProcessHandler(cfg, analyzer, interpreter, log)

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), CORS(), RequestLogger(log))
	r.POST("/process", h.Process)
	r.GET("/healthz", h.Health)
	return r
}
