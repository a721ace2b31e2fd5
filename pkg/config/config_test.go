package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "farm-service", cfg.ServiceName)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "farm_service", cfg.DB.DBName)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.Weather.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_NAME", "farm_test")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("JWT_EXPIRATION_HOURS", "72")
	os.Setenv("REDIS_ADDR", "redis.internal:6379")
	os.Setenv("WEATHER_API_KEY", "test-key")
	os.Setenv("WEATHER_CACHE_TTL", "5m")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "farm_test", cfg.DB.DBName)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 72, cfg.JWT.ExpirationHours)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, "test-key", cfg.Weather.APIKey)
	assert.Equal(t, 5*time.Minute, cfg.Weather.CacheTTL)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
}
