package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/SarthakPDalvi/quant-research/internal/api/handlers"
	"github.com/SarthakPDalvi/quant-research/internal/api/middleware"
	"github.com/SarthakPDalvi/quant-research/internal/config"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logrus.New()

	cfg, err := config.LoadServer(os.Getenv("SERVER_CONFIG"))
	if err != nil {
		logger.WithError(err).Fatal("failed to load server configuration")
	}

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("invalid log level, using info")
	}

	// A server-side price series is optional; /prices/query needs it, the
	// valuation endpoints carry their own prices inline.
	var series *pricing.Series
	if cfg.PricesFile != "" {
		series, err = pricing.LoadCSV(cfg.PricesFile)
		if err != nil {
			logger.WithError(err).Fatalf("failed to load price file %s", cfg.PricesFile)
		}
		logger.WithFields(logrus.Fields{
			"file":   cfg.PricesFile,
			"points": series.Len(),
		}).Info("loaded price series")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	valueHandler := handlers.NewValueHandler(series)
	rankHandler := handlers.NewRankHandler()
	pricesHandler := handlers.NewPricesHandler(series)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/value", valueHandler.RunValuation)
		api.POST("/rank", rankHandler.RankCandidates)

		api.GET("/prices/query", pricesHandler.QueryPrice)
		api.GET("/strategies", handlers.ListStrategies)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
