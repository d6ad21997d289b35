// Package server assembles the HTTP server around the API routes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Jruth44/kaizen-nutrition/config"
	"github.com/Jruth44/kaizen-nutrition/internal/api"
	"github.com/Jruth44/kaizen-nutrition/internal/service"
	"github.com/Jruth44/kaizen-nutrition/internal/store"
)

// Server wraps the HTTP server and its routes.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the full application: store, LLM transport, services and
// routes. It fails when the LLM credential is missing or the user data
// file cannot be read.
func New(cfg *config.Config) (*Server, error) {
	userStore, err := store.NewUserStore(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}

	llm, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM service: %w", err)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api.SetupAPI(router, userStore, llm)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}, nil
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
