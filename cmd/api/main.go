package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "caza_backend/docs"
	"caza_backend/internal/adapter/http/routes"
	"caza_backend/internal/bootstrap"
	"caza_backend/internal/config"
	"caza_backend/internal/infrastructure/logging"
	"caza_backend/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// @title           Caza Backend API
// @version         1.0
// @description     Hunting-season registrations, permits and their Mercado Pago payments.

// @host localhost:8080

// @BasePath  /v1

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always completes.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("[main] config: %v", err)
		return 1
	}
	logging.Init("caza-backend", cfg.App.LogFormat, cfg.App.LogLevel)
	if !strings.EqualFold(cfg.App.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Errorf("[main] startup: %v", err)
		return 1
	}
	defer container.Close()

	if cfg.Sweep.Interval > 0 {
		go container.Sweep.Run(ctx, cfg.Sweep.Interval)
	}

	router := routes.NewRouter(routes.NewHandlers(container), prometheus.DefaultGatherer, []string{cfg.App.FrontendURL})
	if err := routes.Run(ctx, router, cfg.App.Port); err != nil {
		log.Errorf("[main] server failed: %v", err)
		return 1
	}
	return 0
}
