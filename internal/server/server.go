package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/config"
	"github.com/pawhaven/shelter-backend/internal/api"
	"github.com/pawhaven/shelter-backend/internal/middleware"
	"github.com/pawhaven/shelter-backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the server: middleware chain, resource routes, listener.
// redisClient and photos may be nil, which disables rate limiting and
// photo uploads respectively.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, photos *service.PhotoService) *Server {
	router := gin.Default()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.CSRF(cfg.CSRFToken))
	if redisClient != nil {
		router.Use(middleware.NewWriteRateLimiter(redisClient).Middleware())
	} else {
		log.Println("Redis not configured, rate limiting disabled")
	}

	api.SetupAPI(router, db, photos)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
