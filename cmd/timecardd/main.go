// Command timecardd serves the timesheet processing API.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/delamyth/timecard/analyze"
	_ "github.com/delamyth/timecard/analyze/tesseract"
	"github.com/delamyth/timecard/observability/zaplog"
	"github.com/delamyth/timecard/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	logger := zaplog.New(zl)

	r := server.NewRouter(cfg, analyze.DefaultAnalyzer(), logger)

	zl.Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
