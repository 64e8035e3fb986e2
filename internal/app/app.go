package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lciportal_backend/database"
	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/config"
	"lciportal_backend/internal/email"
	"lciportal_backend/internal/handlers"
	"lciportal_backend/internal/logger"
	"lciportal_backend/internal/middleware"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/routes"
	"lciportal_backend/internal/services"
	"lciportal_backend/internal/storage"
	"lciportal_backend/internal/validator"
	"lciportal_backend/pkg/apperrors"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer, store)

	ginRouter := initializeGinRouter(gormDB)
	routes.SetupRoutes(ginRouter, appHandlers, serviceContainer.Resolver)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Storage) *services.ServiceContainer {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)

	resolver := auth.NewPrincipalResolver(tokens, repositories.NewUserRepository(), auth.ResolverConfig{
		AdminEmail:          cfg.Auth.AdminEmail,
		AdminName:           cfg.Auth.AdminName,
		RequireApprovedUser: cfg.Auth.RequireApprovedUser,
	})

	var mailer email.Provider = &email.NoopProvider{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPSender(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email notifications disabled; using no-op provider")
	}

	return services.NewServiceContainer(services.ContainerConfig{
		Tokens:   tokens,
		Resolver: resolver,
		Storage:  store,
		Attachments: services.AttachmentConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
			BaseURL:      cfg.Storage.BaseURL,
		},
		Mailer: mailer,
	})
}

func initializeHandlers(container *services.ServiceContainer, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.Auth),
		QuoteHandler:      handlers.NewQuoteHandler(baseHandler, container.Quote),
		MessageHandler:    handlers.NewMessageHandler(baseHandler, container.Message),
		MentorshipHandler: handlers.NewMentorshipHandler(baseHandler, container.Mentorship),
		UserHandler:       handlers.NewUserHandler(baseHandler, container.User),
		FileHandler:       handlers.NewFileHandler(baseHandler, store),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	return router
}

// seedFirstAdmin guarantees an administrator account exists so the portal
// is manageable from the first boot. Idempotent: an existing account is
// left untouched.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Auth.FirstAdminEmail
	adminPassword := cfg.Auth.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	if _, err := userRepo.FindByEmail(db, adminEmail); err == nil {
		logger.Info("Admin user already exists", "email", adminEmail)
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	admin := &models.User{
		FullName:     cfg.Auth.AdminName,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusApproved,
		ApprovedAt:   &now,
	}

	if err := userRepo.Create(db, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Seeded first admin user", "email", adminEmail)
	return nil
}
