package app

import (
	"context"
	"errors"
	"fmt"

	"flohmarkt_backend/database"
	"flohmarkt_backend/internal/auth"
	"flohmarkt_backend/internal/config"
	"flohmarkt_backend/internal/email"
	"flohmarkt_backend/internal/handlers"
	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/routes"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/storage"
	"flohmarkt_backend/internal/validator"
	"flohmarkt_backend/internal/workers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultCategories seeds the marketplace sections on first boot.
var defaultCategories = []string{
	"سيارات مستعملة",
	"الهواتف المحمولة",
	"الإلكترونيات",
	"سماعات لاسلكية",
	"كاميرات احترافية",
	"أثاث منزلي",
	"أزياء وإكسسوارات",
	"عقارات",
	"فرص عمل",
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := seedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	tokenWorker := workers.NewTokenCleanupWorker(gormDB, repositories.NewUserRepository())
	tokenWorker.Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Upload.BasePath,
		BaseURL:  cfg.Upload.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Upload.BasePath)

	mailer := email.NewProvider(cfg)
	serviceContainer := services.NewServiceContainer(mailer, storageInstance)
	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	ginRouter.Static(cfg.Upload.BaseURL, cfg.Upload.BasePath)

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		FullName:     "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}

func seedCategories(db *gorm.DB) error {
	for _, name := range defaultCategories {
		var category models.Category
		err := db.Where("name = ?", name).First(&category).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check category %q: %w", name, err)
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
	}
	return nil
}
