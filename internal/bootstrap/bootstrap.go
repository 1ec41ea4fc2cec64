package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/electa/docs" // Import generated swagger docs
	appControllers "github.com/yigit/electa/internal/app/controllers"
	appRoutes "github.com/yigit/electa/internal/app/routes"
	appServices "github.com/yigit/electa/internal/app/services"
	"github.com/yigit/electa/internal/catalog"
	"github.com/yigit/electa/internal/config"
	appMiddleware "github.com/yigit/electa/internal/middleware"
	"github.com/yigit/electa/internal/pkg/logger"
	"github.com/yigit/electa/internal/session"
	"github.com/yigit/electa/internal/transcript"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog           *catalog.Catalog // nil when the startup build failed
	Sessions          *session.Store
	AdvisorService    *appServices.AdvisorService
	AdvisorController *appControllers.AdvisorController
	Logger            zerolog.Logger
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

	lgr := logger.WithField("service", "electa")
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog builds the canonical course catalog once at startup.
// A failed build is logged once and yields a nil catalog: the server
// still starts, and every catalog-dependent request reports a service
// unavailable condition instead of crashing.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) *catalog.Catalog {
	if cfg.Catalog.CachePath != "" {
		cat, err := catalog.LoadCache(cfg.Catalog.CachePath)
		if err == nil {
			lgr.Info().Str("path", cfg.Catalog.CachePath).Int("courses", cat.Len()).
				Msg("Course catalog loaded from canonical cache")
			return cat
		}
		lgr.Warn().Err(err).Str("path", cfg.Catalog.CachePath).
			Msg("Canonical cache unreadable, falling back to source merge")
	}

	cat, err := catalog.Build(catalog.Sources{
		SemWisePath:     cfg.Catalog.SemWisePath,
		SlotWisePath:    cfg.Catalog.SlotWisePath,
		CourseTypesPath: cfg.Catalog.CourseTypesPath,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Could not build course catalog; recommendations will be unavailable")
		return nil
	}

	lgr.Info().Int("courses", cat.Len()).Msg("Course catalog built successfully")
	return cat
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, cat *catalog.Catalog, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Catalog: cat,
		Logger:  lgr,
	}

	deps.Sessions = session.NewStore()

	deps.AdvisorService = appServices.NewAdvisorService(
		cat,
		deps.Sessions,
		transcript.NewParser(),
		transcript.NewPDFExtractor(),
		lgr,
	)

	deps.AdvisorController = appControllers.NewAdvisorController(deps.AdvisorService, lgr)

	return deps
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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.AdvisorController)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
