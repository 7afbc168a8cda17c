package server

import (
	"fmt"
	"net/http"
	"time"

	"spawnsmart/internal/config"
	"spawnsmart/internal/content"
	"spawnsmart/internal/contentful"
	custommiddleware "spawnsmart/internal/middleware"
	"spawnsmart/internal/openai"
	"spawnsmart/internal/service"
	"spawnsmart/internal/transport"
	"spawnsmart/internal/userdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  *userdata.Store
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize clients
	cmsClient := contentful.NewClient(
		cfg.Contentful.SpaceID,
		cfg.Contentful.AccessToken,
		logger,
		contentful.WithEnvironment(cfg.Contentful.Environment),
	)
	chatClient := openai.NewClient(cfg.OpenAI.APIKey, logger, openai.WithModel(cfg.OpenAI.Model))

	// Initialize services
	resolver := content.NewResolver(cmsClient, logger)
	store := userdata.NewStore(cfg.UserData.Path, logger)
	recommender := service.NewRecommendationService(chatClient, logger)

	// Initialize handlers
	contentHandler := transport.NewContentHandler(resolver, logger)
	calculatorHandler := transport.NewCalculatorHandler(store, chatClient, recommender, logger)

	// Register routes
	contentHandler.RegisterRoutes(router)
	calculatorHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		store:  store,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Persist user data before shutdown
	if err := s.store.Save(); err != nil {
		s.logger.Error("Failed to save user data", zap.Error(err))
	}

	s.logger.Sync()
	return nil
}
