package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App     `validate:"required"`
		Token   *Token   `validate:"required"`
		HTTP    *HTTP    `validate:"required"`
		Redis   *Redis   `validate:"required"`
		Guard   *Guard   `validate:"required"`
		Demo    *Demo    `validate:"required"`
		Landing *Landing `validate:"required"`
	}

	App struct {
		Name string `validate:"required"`
		Env  string `validate:"required"`
	}

	Token struct {
		Secret   string `validate:"required"`
		Duration string `validate:"required"`
	}

	HTTP struct {
		Env            string
		Port           string `validate:"required,numeric"`
		AllowedOrigins string `validate:"required"`
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       string `validate:"omitempty,numeric"`
	}

	Guard struct {
		LoginPath string `validate:"required,startswith=/"`
		HomePath  string `validate:"required,startswith=/"`
		TokenKey  string `validate:"required"`
		RoleKey   string `validate:"required"`
	}

	Demo struct {
		AdminEmail    string `validate:"required"`
		AdminPassword string `validate:"required"`
	}

	Landing struct {
		CacheTTL string `validate:"required"`
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	env := getEnv("APP_ENV", "development")

	app := &App{
		Name: getEnv("APP_NAME", "cogniwork-web"),
		Env:  env,
	}

	token := &Token{
		Secret:   getEnv("TOKEN_SECRET", "cogniwork-demo-secret"),
		Duration: getEnv("TOKEN_DURATION", "24h"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            env,
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       os.Getenv("REDIS_DB"),
	}

	guard := &Guard{
		LoginPath: getEnv("GUARD_LOGIN_PATH", "/login"),
		HomePath:  getEnv("GUARD_HOME_PATH", "/"),
		TokenKey:  getEnv("GUARD_TOKEN_KEY", "token"),
		RoleKey:   getEnv("GUARD_ROLE_KEY", "role"),
	}

	demo := &Demo{
		AdminEmail:    getEnv("DEMO_ADMIN_EMAIL", "admin@cogniwork.dev"),
		AdminPassword: getEnv("DEMO_ADMIN_PASSWORD", "admin123"),
	}

	landing := &Landing{
		CacheTTL: getEnv("LANDING_CACHE_TTL", "15m"),
	}

	container := &Container{
		App:     app,
		Token:   token,
		HTTP:    http,
		Redis:   redis,
		Guard:   guard,
		Demo:    demo,
		Landing: landing,
	}

	if err := validator.New().Struct(container); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(token.Duration); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_DURATION: %w", err)
	}
	if _, err := time.ParseDuration(landing.CacheTTL); err != nil {
		return nil, fmt.Errorf("invalid LANDING_CACHE_TTL: %w", err)
	}

	return container, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (t *Token) DurationValue() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func (l *Landing) CacheTTLValue() time.Duration {
	d, err := time.ParseDuration(l.CacheTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// Enabled reports whether a Redis address was configured.
func (r *Redis) Enabled() bool {
	return r.Address != ""
}

func (r *Redis) DBInt() int {
	db, err := strconv.Atoi(r.DB)
	if err != nil {
		return 0
	}
	return db
}

func (h *HTTP) Addr() string {
	return fmt.Sprintf("%s:%s", h.URL, h.Port)
}
