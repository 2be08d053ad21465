package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0x00whitecode/hng-audiophile/config"
	"github.com/0x00whitecode/hng-audiophile/database"
	"github.com/0x00whitecode/hng-audiophile/logger"
	"github.com/0x00whitecode/hng-audiophile/middleware"
	"github.com/0x00whitecode/hng-audiophile/routes"
)

func main() {

	// Load environment configuration
	cfg := config.Load()

	// Initialize logger
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Session key-value store: Redis when configured, in-memory otherwise
	var store database.Store
	if cfg.RedisURL != "" {
		store = database.NewRedisStore(database.NewRedisClient(cfg.RedisURL))
	} else {
		log.Println("REDIS_URL not set, using in-memory session store")
		store = database.NewMemoryStore()
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.Session(cfg.SessionTTL))

	routes.RegisterRoutes(router, store, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Storefront is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete.")
}
