package main

import (
	"fmt"
	"os"

	"lbp-sim/internal/api/handlers"
	"lbp-sim/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	var log *zap.Logger
	var err error
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(log)
	poolHandler := handlers.NewPoolHandler(log)
	strategyHandler := handlers.NewStrategyHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)

		api.GET("/pools", poolHandler.ListPools)
		api.GET("/strategies", strategyHandler.ListStrategies)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
