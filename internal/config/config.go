package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Stats     StatsConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
	// TrustProxy takes the client address from X-Forwarded-For and X-Real-IP.
	// Only enable behind a proxy that overwrites those headers.
	TrustProxy bool
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	Schema       string
	MaxOpenConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret           string
	AdminTokenExpiry int // in hours
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds submissions to the intake endpoints per client.
type RateLimitConfig struct {
	IntakeRequests int
	IntakeWindow   time.Duration
}

// StatsConfig holds the company figures reported by /api/stats.
type StatsConfig struct {
	HappyClients      int
	YearsExperience   int
	ProjectsCompleted int
	OnTimeDelivery    int
}

// IsDevelopment reports whether the service runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

func Load() *Config {
	// Variables already present in the environment take precedence over .env
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ADMIN_TOKEN_EXPIRY", 24)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_INTAKE_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_INTAKE_WINDOW", time.Minute)
	v.SetDefault("STATS_HAPPY_CLIENTS", 500)
	v.SetDefault("STATS_YEARS_EXPERIENCE", 15)
	v.SetDefault("STATS_PROJECTS_COMPLETED", 1000)
	v.SetDefault("STATS_ON_TIME_DELIVERY", 98)

	return &Config{
		Server: ServerConfig{
			Port:       v.GetString("SERVER_PORT"),
			Env:        v.GetString("SERVER_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			TrustProxy: v.GetBool("TRUST_PROXY"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Database:     v.GetString("DB_DATABASE"),
			Schema:       v.GetString("DB_SCHEMA"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:           v.GetString("JWT_SECRET"),
			AdminTokenExpiry: v.GetInt("JWT_ADMIN_TOKEN_EXPIRY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			IntakeRequests: v.GetInt("RATE_LIMIT_INTAKE_REQUESTS"),
			IntakeWindow:   v.GetDuration("RATE_LIMIT_INTAKE_WINDOW"),
		},
		Stats: StatsConfig{
			HappyClients:      v.GetInt("STATS_HAPPY_CLIENTS"),
			YearsExperience:   v.GetInt("STATS_YEARS_EXPERIENCE"),
			ProjectsCompleted: v.GetInt("STATS_PROJECTS_COMPLETED"),
			OnTimeDelivery:    v.GetInt("STATS_ON_TIME_DELIVERY"),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
