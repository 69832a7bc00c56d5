package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberflow/barberflow-api/internal/config"
	dbpkg "github.com/barberflow/barberflow-api/internal/db"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/observability"
	"github.com/barberflow/barberflow-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
