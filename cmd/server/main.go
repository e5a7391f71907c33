package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/config"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/logger"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/metrics"
)

const VERSION = "1.0.0"

func init() {
	config.LoadConfigs()
}

func main() {
	kitLogger := logger.New(logger.Config{Service: "brand-portal", Version: VERSION})
	m := metrics.NewPrometheusMetrics()

	handler, err := Routes(kitLogger, m)
	if err != nil {
		kitLogger.Log("msg", "failed to build routes", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfigInstance.GeneralConfig.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	kitLogger.Log("msg", "starting server", "port", config.AppConfigInstance.GeneralConfig.Port)
	if err := srv.ListenAndServe(); err != nil {
		kitLogger.Log("msg", "failed to serve http server", "err", err)
		os.Exit(1)
	}
}
