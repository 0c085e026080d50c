package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sm8ta/cogniwork_web/internal/config"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sm8ta/cogniwork_web/docs"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	guard *GuardMiddleware,
	landingHandler *LandingHandler,
	authHandler *AuthHandler,
	dashboardHandler *DashboardHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages
	pages := router.Group("")
	pages.Use(SecurityHeaders(PageCSP()))
	{
		pages.GET("/", landingHandler.Home)
		pages.GET("/landing/:variant", landingHandler.Variant)
		pages.GET("/login", authHandler.LoginPage)
		pages.POST("/login", authHandler.Login)
		pages.POST("/logout", authHandler.Logout)
	}

	// Guarded pages
	dashboard := pages.Group("/dashboard")
	dashboard.Use(guard.Require(domain.AnyRole()))
	{
		dashboard.GET("", dashboardHandler.Dashboard)
	}
	admin := pages.Group("/admin")
	admin.Use(guard.Require(domain.ExactRole(domain.Admin)))
	{
		admin.GET("/dashboard", dashboardHandler.Dashboard)
	}
	employee := pages.Group("/employee")
	employee.Use(guard.Require(domain.ExactRole(domain.Employee)))
	{
		employee.GET("/dashboard", dashboardHandler.Dashboard)
	}

	// API
	api := router.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	{
		api.GET("/theme", landingHandler.GetTheme)
		api.GET("/landing", landingHandler.ListVariants)
		api.GET("/landing/:variant", landingHandler.GetLanding)
		api.POST("/session", authHandler.CreateSession)
		api.DELETE("/session", authHandler.DeleteSession)
		api.GET("/me", guard.Require(domain.AnyRole()), dashboardHandler.Me)
	}

	// Unknown paths
	router.NoRoute(guard.Fallback())

	return &Router{router: router}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
