package main

import (
	"os"

	"atelier-backoffice/internal/app"
	"atelier-backoffice/internal/config"
	"atelier-backoffice/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.Logger.Level)

	application := app.MustNewApp(cfg, log)

	application.Run()

	log.Info("Application finished")
	os.Exit(0)
}
