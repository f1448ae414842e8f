// @title           Domain Query API
// @version         1.0
// @description     Bulk domain-name availability checking: expands multi-line text against configured suffixes and queries a whois lookup service per candidate, with batch and progress-streaming delivery.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/whoisbatch/domain_query_api/docs" // Swagger docs
	"github.com/whoisbatch/domain_query_api/handlers"
	"github.com/whoisbatch/domain_query_api/pkg/query"
)

// App encapsulates all the components of the application
type App struct {
	Router              *gin.Engine
	DomainQueryHandlers *handlers.DomainQueryHandlers
	HealthHandler       *handlers.HealthHandler
	Logger              *zap.Logger
}

// AppConfig carries the startup-time dependencies: the suffix configuration
// source is resolved once here and injected, never looked up ambiently.
type AppConfig struct {
	SuffixConfigPath string
	Client           query.Lookuper
	Logger           *zap.Logger
	StaticDir        string
}

// NewApp creates and initializes a new application instance
func NewApp(cfg AppConfig) (*App, error) {
	app := &App{
		Router:              gin.Default(),
		DomainQueryHandlers: handlers.NewDomainQueryHandlers(cfg.SuffixConfigPath, cfg.Client, cfg.Logger),
		HealthHandler:       handlers.NewHealthHandler(),
		Logger:              cfg.Logger,
	}

	app.setupRoutes(cfg.StaticDir)
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes(staticDir string) {
	// Health check endpoint (can be top-level)
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	// Group for the domain query endpoints, prefixed by @BasePath /api/v1
	domainQueryV1 := app.Router.Group("/api/v1/domain-query")
	{
		domainQueryV1.POST("/batch", app.DomainQueryHandlers.BatchQueryHandler)
		domainQueryV1.POST("/batch-stream", app.DomainQueryHandlers.StreamQueryHandler)
	}

	// Simple web form driving both endpoints
	if staticDir != "" {
		app.Router.StaticFile("/ui/domain-query", staticDir+"/domain_query_ui.html")
		app.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/ui/domain-query")
		})
	}

	// Add Swagger route
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the Gin HTTP server
func (app *App) Start(addr string) error {
	app.Logger.Info("API server starting", zap.String("addr", addr))
	return app.Router.Run(addr)
}
