package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/api"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/config"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	r := gin.Default()
	if err := api.InitRoutes(r, cfg, logger); err != nil {
		logger.Fatal("failed to initialize routes", zap.Error(err))
	}

	if err := r.Run(cfg.Addr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
