package bootstrap

import (
	"context"
	"fmt"
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

	_ "github.com/derya/acadvault/docs" // Import generated swagger docs
	appControllers "github.com/derya/acadvault/internal/app/controllers"
	appMigrations "github.com/derya/acadvault/internal/app/migrations"
	appRepos "github.com/derya/acadvault/internal/app/repositories"
	appRoutes "github.com/derya/acadvault/internal/app/routes"
	appServices "github.com/derya/acadvault/internal/app/services"
	"github.com/derya/acadvault/internal/config"
	"github.com/derya/acadvault/internal/db"
	appMiddleware "github.com/derya/acadvault/internal/middleware"
	pkgAuth "github.com/derya/acadvault/internal/pkg/auth"
	"github.com/derya/acadvault/internal/pkg/logger"
	"github.com/derya/acadvault/internal/pkg/objectstore"
	"github.com/derya/acadvault/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService   appServices.CatalogService
	IngestionService appServices.IngestionService
	DownloadService  appServices.DownloadService
	StatsService     appServices.StatsService
	ContactService   appServices.ContactService
	AuthService      appServices.AuthService

	AuthController      *appControllers.AuthController
	ProgramController   *appControllers.ProgramController
	ResourceController  *appControllers.ResourceController
	DashboardController *appControllers.DashboardController
	ContactController   *appControllers.ContactController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	ObjectStore    objectstore.Client
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Seeding failures should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// setupObjectStore builds the configured object store backend.
func setupObjectStore(cfg *config.Config, lgr zerolog.Logger) (objectstore.Client, error) {
	switch cfg.Storage.Mode {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		store, err := objectstore.NewMinioStore(ctx, objectstore.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object store: %w", err)
		}
		lgr.Info().Str("endpoint", cfg.Storage.Endpoint).Str("bucket", cfg.Storage.Bucket).Msg("Object store configured (s3)")
		return store, nil
	case "local":
		baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
		store, err := objectstore.NewLocalStore(cfg.Storage.LocalPath, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local file store: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Object store configured (local)")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage mode: %s", cfg.Storage.Mode)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	store, err := setupObjectStore(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize object store")
		return nil, err
	}
	deps.ObjectStore = store

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.ProgramRepository,
		deps.Repos.ResourceRepository,
	)
	deps.IngestionService = appServices.NewIngestionService(
		deps.Repos.ProgramRepository,
		deps.Repos.ResourceRepository,
		deps.ObjectStore,
		cfg.Storage.MaxUploadBytes,
	)
	deps.DownloadService = appServices.NewDownloadService(
		deps.Repos.DownloadRepository,
		deps.Repos.ResourceRepository,
	)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.ProgramRepository,
		deps.Repos.ResourceRepository,
		deps.Repos.DownloadRepository,
		deps.Repos.ContactMessageRepository,
	)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactMessageRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProgramController = appControllers.NewProgramController(deps.CatalogService)
	deps.ResourceController = appControllers.NewResourceController(
		deps.CatalogService,
		deps.IngestionService,
		deps.DownloadService,
	)
	deps.DashboardController = appControllers.NewDashboardController(deps.StatsService, deps.DownloadService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)

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
		deps.ProgramController,
		deps.ResourceController,
		deps.DashboardController,
		deps.ContactController,
		deps.AuthMiddleware,
	)

	return router
}
