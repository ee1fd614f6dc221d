package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "eventconnect", cfg.Storage.Prefix)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 500*time.Millisecond, cfg.Auth.Latency)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoadConfigBackendSettings(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"mongo without uri", map[string]string{"STORAGE_BACKEND": "mongo", "MONGODB_URI": ""}, "MONGODB_URI is required"},
		{"mongo placeholder without password", map[string]string{"STORAGE_BACKEND": "mongo", "MONGODB_URI": "mongodb+srv://app:<password>@cluster", "MONGODB_PASSWORD": ""}, "MONGODB_PASSWORD is required"},
		{"mongo", map[string]string{"STORAGE_BACKEND": "mongo", "MONGODB_URI": "mongodb://localhost:27017"}, ""},
		{"redis without addr", map[string]string{"STORAGE_BACKEND": "redis", "REDIS_ADDR": ""}, "REDIS_ADDR is required"},
		{"redis", map[string]string{"STORAGE_BACKEND": "Redis", "REDIS_ADDR": "localhost:6379", "REDIS_DB": "2"}, ""},
		{"redis bad db", map[string]string{"STORAGE_BACKEND": "redis", "REDIS_ADDR": "localhost:6379", "REDIS_DB": "two"}, "REDIS_DB must be an integer"},
		{"postgres without url", map[string]string{"STORAGE_BACKEND": "postgres", "DATABASE_URL": ""}, "DATABASE_URL is required"},
		{"supabase without key", map[string]string{"STORAGE_BACKEND": "supabase", "SUPABASE_URL": "https://x.supabase.co", "SUPABASE_URL_ANON_KEY": ""}, "SUPABASE_URL_ANON_KEY is required"},
		{"unknown", map[string]string{"STORAGE_BACKEND": "sqlite"}, `unknown STORAGE_BACKEND "sqlite"`},
		{"bad latency", map[string]string{"AUTH_LATENCY": "soon"}, "AUTH_LATENCY must be a duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "development")
			t.Setenv("REDIS_DB", "")
			t.Setenv("AUTH_LATENCY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.name == "redis" {
				assert.Equal(t, BackendRedis, cfg.Storage.Backend)
				assert.Equal(t, 2, cfg.Storage.RedisDB)
			}
		})
	}
}

func TestCloudinaryEnabled(t *testing.T) {
	assert.False(t, CloudinaryConfig{CloudName: "demo"}.Enabled())
	assert.True(t, CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}.Enabled())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
