// Package config load application configuration from environment variables
package config

import (
	"fmt"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Store backends
const (
	BackendAirtable = "airtable"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	Env          string   `envconfig:"APP_ENV" default:"development"`
	Port         int      `envconfig:"PORT" default:"8080"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGIN" default:"http://localhost:3000"`
	StoreBackend string   `envconfig:"STORE_BACKEND" default:"airtable"`
	Airtable     AirtableConfig
	DB           DBConfig
	Redis        RedisConfig
	Identity     IdentityConfig
	Limiter      RateLimiterConfig
	Workflow     WorkflowConfig
}

// AirtableConfig configure the hosted record store
type AirtableConfig struct {
	APIKey  string        `envconfig:"AIRTABLE_API_KEY"`
	BaseID  string        `envconfig:"AIRTABLE_BASE_ID"`
	URL     string        `envconfig:"AIRTABLE_URL" default:"https://api.airtable.com/v0"`
	Timeout time.Duration `envconfig:"AIRTABLE_TIMEOUT" default:"15s"`
}

// DBConfig configure the self-hosted postgres record store
type DBConfig struct {
	Host          string `envconfig:"DB_HOST"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USERNAME"`
	Password      string `envconfig:"DB_PASSWORD"`
	Name          string `envconfig:"DB_DATABASE"`
	UseConnString bool   `envconfig:"USE_CONNECTION_STR" default:"false"`
	ConnString    string `envconfig:"DB_CONNECTION_STR"`
}

// RedisConfig configure redis, empty Addr keeps every state in process memory
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// IdentityConfig configure verification of identity provider tokens
type IdentityConfig struct {
	JWTSecret string `envconfig:"IDENTITY_JWT_SECRET" required:"true"`
	Issuer    string `envconfig:"IDENTITY_JWT_ISSUER"`
}

// RateLimiterConfig configure per-client request rate
type RateLimiterConfig struct {
	RequestsPerSecond uint `envconfig:"RATE_LIMIT_REQUESTS_PER_SECOND" default:"5"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// WorkflowConfig tune recruiter workflow behaviour
type WorkflowConfig struct {
	RankUnknownTiersLast bool          `envconfig:"RANK_UNKNOWN_TIERS_LAST" default:"false"`
	ExpansionTTL         time.Duration `envconfig:"EXPANSION_TTL" default:"720h"`
	DraftTTL             time.Duration `envconfig:"DRAFT_TTL" default:"72h"`
	LockTTL              time.Duration `envconfig:"SCHEDULING_LOCK_TTL" default:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate check values that envconfig can not express
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}

	switch c.StoreBackend {
	case BackendAirtable:
		if c.Airtable.APIKey == "" || c.Airtable.BaseID == "" {
			return fmt.Errorf("AIRTABLE_API_KEY and AIRTABLE_BASE_ID are required for airtable backend")
		}
	case BackendPostgres:
		if c.DB.UseConnString && c.DB.ConnString == "" {
			return fmt.Errorf("DB_CONNECTION_STR is required when USE_CONNECTION_STR is true")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid STORE_BACKEND: %s (must be one of: airtable, postgres, memory)", c.StoreBackend)
	}

	if c.Limiter.Enabled && c.Limiter.RequestsPerSecond == 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND must be positive")
	}
	if len(c.Identity.JWTSecret) < 32 {
		return fmt.Errorf("IDENTITY_JWT_SECRET must be at least 32 characters")
	}
	return nil
}

// IsProduction report whether app run in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetServerAddr return listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.AllowOrigins))
	for _, origin := range c.AllowOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Store=%s, Redis=%t, Limiter.RPS=%d, Limiter.Enabled=%t, CORS.Origins=%d, RankUnknownLast=%t}",
		c.Env, c.Port, c.StoreBackend, c.Redis.Addr != "", c.Limiter.RequestsPerSecond, c.Limiter.Enabled,
		len(c.AllowOrigins), c.Workflow.RankUnknownTiersLast)
}
