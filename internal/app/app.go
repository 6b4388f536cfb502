package app

import (
	"errors"
	"fmt"

	"sitecraft_backend/internal/auth"
	"sitecraft_backend/internal/config"
	"sitecraft_backend/internal/database"
	"sitecraft_backend/internal/email"
	"sitecraft_backend/internal/handlers"
	"sitecraft_backend/internal/logger"
	"sitecraft_backend/internal/middleware"
	"sitecraft_backend/internal/models"
	"sitecraft_backend/internal/repositories"
	"sitecraft_backend/internal/routes"
	"sitecraft_backend/internal/services"
	"sitecraft_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
		logger.Info("Email notifications enabled", "smtp_host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &MockEmailProvider{}
		logger.Warn("Email notifications disabled. Using mock provider.")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	quoteRepo := repositories.NewQuoteRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo),
		ReviewService: services.NewReviewService(reviewRepo, userRepo, emailProvider),
		QuoteService:  services.NewQuoteService(quoteRepo, emailProvider),
		EmailProvider: emailProvider,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		ReviewHandler: handlers.NewReviewHandler(baseHandler, serviceContainer.ReviewService),
		QuoteHandler:  handlers.NewQuoteHandler(baseHandler, serviceContainer.QuoteService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}

// seedFirstAdmin создает первого администратора из конфигурации.
// Админ-флаг не выставляется ни одним HTTP-эндпоинтом, это единственный
// штатный способ получить админа.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminUsername := cfg.FirstAdmin.Username
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" || adminUsername == "" {
		logger.Warn("First admin credentials are not configured. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)
	return nil
}
