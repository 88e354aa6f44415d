// Package bootstrap wires configuration, storage and services together
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/internhub/docs" // Import generated swagger docs
	appControllers "github.com/yigit/internhub/internal/app/controllers"
	"github.com/yigit/internhub/internal/app/matching"
	appMigrations "github.com/yigit/internhub/internal/app/migrations"
	appRepos "github.com/yigit/internhub/internal/app/repositories"
	appRoutes "github.com/yigit/internhub/internal/app/routes"
	appServices "github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/config"
	"github.com/yigit/internhub/internal/db"
	appMiddleware "github.com/yigit/internhub/internal/middleware"
	pkgAuth "github.com/yigit/internhub/internal/pkg/auth"
	"github.com/yigit/internhub/internal/pkg/email"
	"github.com/yigit/internhub/internal/pkg/helpers"
	"github.com/yigit/internhub/internal/pkg/llm"
	"github.com/yigit/internhub/internal/pkg/logger"
	"github.com/yigit/internhub/internal/pkg/ws"
	"github.com/yigit/internhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	StudentService      appServices.StudentService
	FacultyService      appServices.FacultyService
	AssignmentService   appServices.AssignmentService
	InternshipService   appServices.InternshipService
	NotificationService appServices.NotificationService
	ReportService       appServices.ReportService
	ReminderService     *appServices.ReminderService

	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	FacultyController      *appControllers.FacultyController
	AssignmentController   *appControllers.AssignmentController
	InternshipController   *appControllers.InternshipController
	NotificationController *appControllers.NotificationController
	ReportController       *appControllers.ReportController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Hub            *ws.Hub
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Hub = ws.NewHub(lgr)

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	llmClient := llm.NewHTTPClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: helpers.ParseDuration(cfg.LLM.Timeout, 30*time.Second),
	}, lgr)

	detector := appServices.NewChangeDetector(cfg.Detector.GrowthMode)

	deps.AuthService = appServices.NewAuthService(
		dbPool,
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.UserRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.NotificationRepository,
		detector,
		deps.Hub,
	)

	deps.FacultyService = appServices.NewFacultyService(
		deps.Repos.FacultyRepository,
		deps.Repos.StudentRepository,
	)

	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		matching.NewOverlapStrategy(),
	)

	deps.InternshipService = appServices.NewInternshipService(deps.Repos.InternshipRepository)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.StatsRepository, llmClient)

	if cfg.Reminder.Enabled {
		deps.ReminderService = appServices.NewReminderService(
			deps.Repos.InternshipRepository,
			deps.Repos.ApplicationRepository,
			emailService,
			cfg.Reminder.RunAt,
			cfg.Reminder.DaysAhead,
		)
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, lgr)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService, lgr)
	deps.InternshipController = appControllers.NewInternshipController(deps.InternshipService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(
		deps.NotificationService, deps.FacultyService, deps.Hub, lgr)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.FacultyController,
		deps.AssignmentController,
		deps.InternshipController,
		deps.NotificationController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
