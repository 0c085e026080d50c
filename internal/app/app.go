package app

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/sm8ta/cogniwork_web/internal/adapter/handler/http"
	"github.com/sm8ta/cogniwork_web/internal/adapter/logger"
	"github.com/sm8ta/cogniwork_web/internal/adapter/prometheus"
	"github.com/sm8ta/cogniwork_web/internal/adapter/redis"
	"github.com/sm8ta/cogniwork_web/internal/config"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
	"github.com/sm8ta/cogniwork_web/internal/core/services"

	"github.com/go-playground/validator/v10"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
	server       *nethttp.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	var redisConn *redisClient.Client
	var cacheAdapter ports.CachePort = redis.NoopCache{}
	if cfg.Redis.Enabled() {
		redisConn = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DBInt(),
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cacheAdapter = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS not set, landing page cache disabled", nil)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	theme := domain.DefaultTheme()
	keys := http.IdentityKeys{
		Token: cfg.Guard.TokenKey,
		Role:  cfg.Guard.RoleKey,
		User:  "user",
	}

	// Services
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.DurationValue(), loggerAdapter)
	sessionService := services.NewSessionService(tokenService, loggerAdapter, validate, services.DemoAccount{
		Email:    cfg.Demo.AdminEmail,
		Password: cfg.Demo.AdminPassword,
	})
	landingService := services.NewLandingService(loggerAdapter, cacheAdapter, cfg.Landing.CacheTTLValue())
	// Cached pages from a previous build may be stale.
	if err := landingService.InvalidateCache(ctx); err != nil {
		loggerAdapter.Warn("Landing page cache not invalidated", map[string]interface{}{
			"error": err.Error(),
		})
	}
	accessGuard := services.NewAccessGuard(cfg.Guard.LoginPath, cfg.Guard.HomePath)

	// HTTP Handlers
	guardMiddleware := http.NewGuardMiddleware(accessGuard, keys, loggerAdapter, metrics)
	landingHandler := http.NewLandingHandler(landingService, theme, loggerAdapter, metrics)
	authHandler := http.NewAuthHandler(
		sessionService,
		keys,
		accessGuard.LoginPath(),
		cfg.Token.DurationValue(),
		cfg.App.Env == "production",
		theme,
		loggerAdapter,
		metrics,
	)
	dashboardHandler := http.NewDashboardHandler(keys, theme, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		guardMiddleware,
		landingHandler,
		authHandler,
		dashboardHandler,
	)
	if err != nil {
		if redisConn != nil {
			redisConn.Close()
		}
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
		server: &nethttp.Server{
			Addr:    cfg.HTTP.Addr(),
			Handler: router.Engine(),
		},
	}, nil
}

// Runs the HTTP server in the background
func (a *App) Run() {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
