package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scanhub.backend/internal/config"
	"scanhub.backend/internal/infrastructure/datasources/postgres"
	"scanhub.backend/internal/infrastructure/repositories"
	"scanhub.backend/internal/interfaces/http/handlers"
	"scanhub.backend/internal/interfaces/http/middleware"
	"scanhub.backend/internal/usecases"
	"scanhub.backend/pkg/jwt"
	"scanhub.backend/pkg/logger"
	"scanhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gormpostgres.New(gormpostgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	openProbeDB = func(cfg config.DatabaseConfig) (*sql.DB, error) { return postgres.NewConnection(cfg) }
	runServer   = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load and validate configuration
	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Separate raw connection for the readiness probe so probe checks
	// stay independent of the gorm pool.
	probeDB, err := openProbeDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open probe connection: %w", err)
	}
	defer probeDB.Close()

	// Initialize JWT service
	tokenService := jwt.NewService(cfg.JWT.Secret)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	apiKeyRepo := repositories.NewApiKeyRepository(db)
	scanRepo := repositories.NewScanResultRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, tokenService, cfg.JWT.AccessExpiry)
	userUsecase := usecases.NewUserUsecase(userRepo, roleRepo)
	apiKeyUsecase := usecases.NewApiKeyUsecase(apiKeyRepo)
	scanUsecase := usecases.NewScanUsecase(scanRepo)
	resolver := usecases.NewPrincipalResolver(userRepo, apiKeyUsecase, tokenService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	apiKeyHandler := handlers.NewApiKeyHandler(apiKeyUsecase)
	scanHandler := handlers.NewScanHandler(scanUsecase)
	healthHandler := handlers.NewHealthHandler(probeDB)

	// Auth middleware resolves API keys and bearer tokens
	authMiddleware := middleware.AuthMiddleware(resolver)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerProbeRoutes(r, healthHandler)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		userHandler:    userHandler,
		apiKeyHandler:  apiKeyHandler,
		scanHandler:    scanHandler,
		authMiddleware: authMiddleware,
	})

	// Start server
	log.Printf("🚀 ScanHub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
