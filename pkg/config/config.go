package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config groups the service configuration, read by Viper from the environment and
// optionally from a .env / config.env file. Environment variables win.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	AI       AIConfig
	Redis    RedisConfig
	Costing  CostingConfig
	Upstream UpstreamConfig
	License  LicenseConfig
}

type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string
}

// DBConfig PostgreSQL settings. DatabaseURL, when set, is used as the whole connection string
// (e.g. the Supabase pooler URL).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
}

// DSN builds the connection string, escaping special characters in the password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig verifies identity-provider tokens (HS256 shared secret).
type JWTConfig struct {
	Secret   string
	Issuer   string // optional; checked when set
	Audience string // optional; checked when set
}

type HTTPConfig struct {
	Host string
	Port int
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AIConfig struct {
	AnthropicAPIKey string
	Model           string
	Timeout         time.Duration
}

// Enabled reports whether an AI provider is configured.
func (c AIConfig) Enabled() bool { return c.AnthropicAPIKey != "" }

// RedisConfig for the suggestion cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SuggestTTL time.Duration
}

type CostingConfig struct {
	DefaultPorsiBulanan decimal.Decimal
	LowStockThreshold   decimal.Decimal
	TargetDailyProfit   decimal.Decimal
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LicenseConfig struct {
	Required bool
}

// Load reads the configuration. Expected names: APP_ENV, DATABASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "fortisapp-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", DriverPostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "fortisapp"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
		},
		JWT: JWTConfig{
			Secret:   getString(v, "JWT_SECRET", ""),
			Issuer:   getString(v, "JWT_ISSUER", ""),
			Audience: getString(v, "JWT_AUDIENCE", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			Model:           getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			Timeout:         time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			SuggestTTL: time.Duration(getInt(v, "SUGGEST_CACHE_TTL_SECONDS", 600)) * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL: getString(v, "UPSTREAM_BASE_URL", ""),
			Timeout: time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		License: LicenseConfig{
			Required: getBool(v, "LICENSE_REQUIRED", true),
		},
	}

	var err error
	if cfg.Costing.DefaultPorsiBulanan, err = getDecimal(v, "HPP_DEFAULT_PORSI_BULANAN", "0"); err != nil {
		return nil, err
	}
	if cfg.Costing.LowStockThreshold, err = getDecimal(v, "LOW_STOCK_THRESHOLD", "10"); err != nil {
		return nil, err
	}
	if cfg.Costing.TargetDailyProfit, err = getDecimal(v, "TARGET_DAILY_PROFIT", "0"); err != nil {
		return nil, err
	}

	switch cfg.Store.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, cfg.Store.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := getString(v, key, def)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
