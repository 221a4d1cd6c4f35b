package main

import (
	"context"
	"log"
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/sirupsen/logrus"

	"openride/internal/cache"
	"openride/internal/config"
	"openride/internal/controllers"
	"openride/internal/logger"
	"openride/internal/middleware"
	"openride/internal/routes"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	if err := config.InitDB(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer config.Close(config.DB)

	if cfg.RedisURL != "" {
		rc, err := cache.Connect(context.Background(), cfg.RedisURL, cfg.RouteCacheTTL)
		if err != nil {
			logrus.WithError(err).Warn("route cache disabled")
		} else {
			defer rc.Close()
			controllers.SetRouteCache(rc)
		}
	}

	middleware.SetSecret(cfg.JWTSecret)

	r := routes.SetupRouter(ginlog.SetLogger())

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, r))
}
