package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"ideavault/internal/auth"
	"ideavault/internal/config"
	"ideavault/internal/handler"
	"ideavault/internal/middleware"
	"ideavault/internal/platform"
	"ideavault/internal/repository/postgres"
	"ideavault/internal/service"
	serviceLLM "ideavault/internal/service/llm"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token verification: JWKS when an external issuer is configured,
	// otherwise locally issued HS256 tokens
	var verifier auth.TokenVerifier
	var err error
	if cfg.JWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	} else {
		verifier, err = auth.NewLocalVerifier(cfg.JWTSecret, logger)
	}
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	ideaRepo := postgres.NewIdeaRepository(repoConfig)
	eventRepo := postgres.NewEventRepository(repoConfig)

	// Platform catalog for the generation system prompt
	platformRegistry, err := platform.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load platform catalog: %v", err)
	}
	logger.Info("platform catalog loaded", "platforms", len(platformRegistry.List()))

	// Setup LLM providers
	providerRegistry, err := serviceLLM.SetupProviders(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM providers: %v", err)
	}

	// Create services
	authService := service.NewAuthService(userRepo, issuer, logger)
	ideaService := service.NewIdeaService(ideaRepo, logger)
	eventService := service.NewEventService(eventRepo, logger)
	generationService := serviceLLM.NewGenerationService(providerRegistry, platformRegistry, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	ideaHandler := handler.NewIdeaHandler(ideaService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	generateHandler := handler.NewGenerateHandler(generationService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Idea routes
	mux.HandleFunc("GET /v1/ideas/getIdeas", ideaHandler.GetIdeas)
	mux.HandleFunc("POST /v1/ideas/createIdea", ideaHandler.CreateIdea)
	mux.HandleFunc("GET /v1/ideas/searchIdeas", ideaHandler.SearchIdeas)
	mux.HandleFunc("PUT /v1/ideas/updateIdea/{id}", ideaHandler.UpdateIdea)
	mux.HandleFunc("DELETE /v1/ideas/deleteIdea/{id}", ideaHandler.DeleteIdea)

	// Generation stream
	mux.HandleFunc("POST /v1/ideas/AIIdeaContent", generateHandler.GenerateIdeaContent)

	// Event routes
	mux.HandleFunc("GET /v1/events/getEvents", eventHandler.GetEvents)
	mux.HandleFunc("POST /v1/events/createEvent", eventHandler.CreateEvent)
	mux.HandleFunc("PUT /v1/events/updateEvent/{id}", eventHandler.UpdateEvent)
	mux.HandleFunc("DELETE /v1/events/deleteEvent/{id}", eventHandler.DeleteEvent)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.AuthMiddleware(verifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
