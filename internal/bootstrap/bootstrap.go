package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursecatalog/internal/app/controllers"
	appRoutes "github.com/yigit/coursecatalog/internal/app/routes"
	appServices "github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/config"
	appMiddleware "github.com/yigit/coursecatalog/internal/middleware"
	pkgAuth "github.com/yigit/coursecatalog/internal/pkg/auth"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService   appServices.CatalogService
	CourseController *appControllers.CourseController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewJWTService builds the admin token service from configuration.
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    cfg.TokenTTL(),
		TokenIssuer: cfg.Auth.Issuer,
	})
}

// BuildDependencies initializes services, middleware and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.CatalogService = appServices.NewCatalogService(lgr,
		catalog.WithInitialCapacity(cfg.Catalog.InitialCapacity))

	deps.JWTService = NewJWTService(cfg)
	if !cfg.AuthEnabled() {
		lgr.Warn().Msg("auth.secret is empty; catalog reloads are not protected")
	}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.AuthEnabled())

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService, cfg.Catalog.PageSize, cfg.Catalog.Dir)

	return deps
}

// LoadInitialCatalog loads the configured course file. A failure is
// returned so the caller can decide whether to start with an empty catalog.
func LoadInitialCatalog(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if !cfg.Catalog.LoadOnStart || cfg.Catalog.Path == "" {
		deps.Logger.Info().Msg("No course file configured for startup")
		return nil
	}

	if _, err := deps.CatalogService.LoadFromFile(ctx, cfg.Catalog.Path); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}
	return nil
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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.CourseController, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
