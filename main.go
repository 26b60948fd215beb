package main

import (
	"context"
	"log"
	"strconv"

	"appwrite_api/appwrite"
	"appwrite_api/config"
	"appwrite_api/handlers"
	"appwrite_api/logs"
	"appwrite_api/middlewares"
	"appwrite_api/types"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}

	logger, closeLogger, err := logs.NewLogger(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer closeLogger()

	// log.Fatalf skips deferred calls, flush the logger first
	fatalf := func(format string, v ...interface{}) {
		closeLogger()
		log.Fatalf(format, v...)
	}

	// Initialize Appwrite handles from the configuration loaded above
	loader := appwrite.NewLoader(func() (*types.Config, error) { return cfg, nil })
	appwriteApp, err := loader.Get(logger)
	if err != nil {
		fatalf("Failed to initialize Appwrite: %v\n", err)
	}

	// Check each handle of the Appwrite app
	if appwriteApp.Account == nil {
		fatalf("Failed to initialize Appwrite Account handle\n")
	}
	if appwriteApp.Databases == nil {
		fatalf("Failed to initialize Appwrite Databases handle\n")
	}
	if appwriteApp.Functions == nil {
		fatalf("Failed to initialize Appwrite Functions handle\n")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestIDMiddleware(), middlewares.LoggerMiddleware(logger))

	// Disable TrustedProxies feature
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fatalf("Failed to set trusted proxies: %v\n", err)
	}

	r.GET("/healthz", handlers.HealthHandler())

	platformGroup := r.Group("/api/platform")
	platformGroup.GET("", handlers.GetPlatformHandler(logger, appwriteApp))

	port := strconv.Itoa(cfg.Port)
	logger.Info("Starting server on port " + port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		fatalf("Server stopped: %v\n", err)
	}
}
