package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/ffpos/ffpos/internal/adapter/handler"
	"github.com/ffpos/ffpos/internal/adapter/storage"
	"github.com/ffpos/ffpos/internal/config"
	"github.com/ffpos/ffpos/internal/core/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dataDir := flag.String("data", "", "override the data directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}

	var logger *zap.Logger
	if cfg.Logging.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	store, err := storage.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		logger.Fatal("open data dir", zap.Error(err))
	}

	settingsSvc := service.NewSettingsService(store, logger)
	posSvc := service.NewPOSService(store, settingsSvc, logger)
	authSvc := service.NewAuthService(cfg.Credentials(), logger)

	cli := handler.NewCLI(posSvc, settingsSvc, authSvc, os.Stdin, os.Stdout)
	if err := cli.Run(); err != nil {
		logger.Fatal("terminal error", zap.Error(err))
	}
}
