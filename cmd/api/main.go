package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawhaven/shelter-backend/config"
	"github.com/pawhaven/shelter-backend/internal/database"
	"github.com/pawhaven/shelter-backend/internal/server"
	"github.com/pawhaven/shelter-backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: failed to connect to Redis, rate limiting disabled: %v", err)
		redisClient = nil
	}

	var photos *service.PhotoService
	storage, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: failed to configure S3, photo uploads disabled: %v", err)
	} else if storage != nil {
		photos = service.NewPhotoService(storage)
	}

	srv := server.New(cfg, db, redisClient, photos)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
