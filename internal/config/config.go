package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "eventconnect-dev-secret"

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	CORSOrigins []string

	Storage    StorageConfig
	Auth       AuthConfig
	NATSURL    string
	Cloudinary CloudinaryConfig
}

type StorageConfig struct {
	Backend string
	Prefix  string

	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseURL string

	SupabaseURL     string
	SupabaseAnonKey string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	JWKSURL   string
	Latency   time.Duration
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func LoadConfig() (*Config, error) {
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	ttl, err := getEnvDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	latency, err := getEnvDuration("AUTH_LATENCY", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000")),
		Storage: StorageConfig{
			Backend:         strings.ToLower(getEnvWithDefault("STORAGE_BACKEND", BackendMemory)),
			Prefix:          getEnvWithDefault("STORAGE_PREFIX", "eventconnect"),
			MongoDBURI:      os.Getenv("MONGODB_URI"),
			MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
			MongoDBDatabase: getEnvWithDefault("MONGODB_DATABASE", "eventconnect"),
			RedisAddr:       os.Getenv("REDIS_ADDR"),
			RedisPassword:   os.Getenv("REDIS_PASSWORD"),
			RedisDB:         redisDB,
			DatabaseURL:     os.Getenv("DATABASE_URL"),
			SupabaseURL:     os.Getenv("SUPABASE_URL"),
			SupabaseAnonKey: os.Getenv("SUPABASE_URL_ANON_KEY"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  ttl,
			JWKSURL:   os.Getenv("AUTH_JWKS_URL"),
			Latency:   latency,
		},
		NATSURL: os.Getenv("NATS_URL"),
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks only the settings the selected backend needs.
func (s StorageConfig) validate() error {
	switch s.Backend {
	case BackendMemory:
	case BackendMongo:
		if s.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI is required")
		}
		if strings.Contains(s.MongoDBURI, "<password>") && s.MongoDBPassword == "" {
			return fmt.Errorf("MONGODB_PASSWORD is required")
		}
	case BackendRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	case BackendPostgres:
		if s.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case BackendSupabase:
		if s.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if s.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", s.Backend)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %v", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %v", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
