package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tripcost/pkg/db"
)

const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	CacheTTLMinutes int
	SnowflakeNodeID int64
	StoreBackend    string
	SavedTripsKey   string
	Redis           RedisConfig
	Postgres        db.PostgresConfig
	Observability   ObservabilityConfig

	// CORSAllowedOrigins defaults to every origin.
	CORSAllowedOrigins []string
	// RateLimitPerMinute is per client IP. Zero disables limiting.
	RateLimitPerMinute int
}

// Load reads .env when present, then the process environment. Every missing
// or malformed variable is reported in one joined error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	var errs []error

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	cacheTTLMinutes := mustInt("CACHE_TTL_MINUTES", &errs)
	nodeID := mustInt("SNOWFLAKE_NODE_ID", &errs)
	if nodeID < 0 || nodeID > 1023 {
		errs = append(errs, errors.New("out of range env: SNOWFLAKE_NODE_ID (0-1023)"))
	}

	config := &Config{
		AppEnv:             appEnv,
		AppPort:            appPort,
		CacheTTLMinutes:    cacheTTLMinutes,
		SnowflakeNodeID:    int64(nodeID),
		StoreBackend:       envOr("STORE_BACKEND", StoreRedis),
		SavedTripsKey:      envOr("SAVED_TRIPS_KEY", "plano_saved_trips"),
		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitPerMinute: optionalInt("RATE_LIMIT_PER_MINUTE", 600, &errs),
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "tripcost"),
			Environment:  appEnv,
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	switch config.StoreBackend {
	case StoreRedis:
		config.Redis = RedisConfig{
			Host:     mustEnv("REDIS_HOST", &errs),
			Port:     mustEnv("REDIS_PORT", &errs),
			Password: os.Getenv("REDIS_PASSWORD"),
		}
	case StorePostgres:
		config.Postgres = db.PostgresConfig{
			Host:     mustEnv("POSTGRES_HOST", &errs),
			Port:     mustEnv("POSTGRES_PORT", &errs),
			User:     mustEnv("POSTGRES_USER", &errs),
			Password: mustEnv("POSTGRES_PASSWORD", &errs),
			DBName:   mustEnv("POSTGRES_DB", &errs),
			SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
		}
	default:
		errs = append(errs, errors.New("invalid env: STORE_BACKEND must be redis or postgres"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return config, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func mustInt(key string, errs *[]error) int {
	raw := mustEnv(key, errs)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
}

func optionalInt(key string, fallback int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
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

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
