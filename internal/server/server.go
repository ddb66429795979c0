package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/wastewise-v1/backend/config"
	"github.com/pageza/wastewise-v1/backend/internal/api"
	"github.com/pageza/wastewise-v1/backend/internal/database"
	"github.com/pageza/wastewise-v1/backend/internal/middleware"
	"github.com/pageza/wastewise-v1/backend/internal/router"
	"github.com/pageza/wastewise-v1/backend/internal/service"
)

// Server wires the services and handlers together and owns the HTTP server.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds a fully wired server from configuration: database, optional
// Redis-backed rate limiting, the LLM client and all handlers.
func New(cfg *config.Config) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	llmService, err := service.NewLLMService()
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(cfg.JWTSecret)
	ingredientHandler := api.NewIngredientHandler(service.NewIngredientService(db))
	wasteHandler := api.NewFoodWasteHandler(service.NewFoodWasteService(db))
	householdHandler := api.NewHouseholdHandler(service.NewHouseholdService(db))
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db, llmService))

	var generationLimiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		generationLimiter = middleware.NewRecipeGenerationRateLimiter(redisClient)
	} else {
		log.Printf("Redis not configured, recipe generation rate limiting disabled")
	}

	r := router.SetupRouter(ingredientHandler, wasteHandler, householdHandler, recipeHandler, authService, generationLimiter)

	return &Server{
		cfg:    cfg,
		router: r,
	}, nil
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
