package main

import (
	"log"

	"go-course-portal/internal/app"
	"go-course-portal/internal/bootstrap"
	"go-course-portal/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// build dependency + routes
	a, err := app.BuildApp(cfg, logger, nil)
	if err != nil {
		logger.Fatal("build app", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		a.Router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger,
		a.Close,
	)
	if err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
