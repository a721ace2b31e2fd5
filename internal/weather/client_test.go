package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farm-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.WeatherConfig {
	return &config.WeatherConfig{
		BaseURL:  baseURL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	}
}

func TestCurrent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Nairobi", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"location": {"name": "Nairobi", "country": "Kenya"},
			"current": {
				"temp_c": 24.5, "feelslike_c": 25.1, "humidity": 60,
				"wind_kph": 12.2,
				"condition": {"text": "Partly cloudy", "icon": "//cdn/icon.png"},
				"vis_km": 10, "pressure_mb": 1015
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, zap.NewNop())
	current, err := client.Current(context.Background(), "Nairobi")

	require.NoError(t, err)
	assert.Equal(t, "Nairobi, Kenya", current.Location)
	assert.Equal(t, 24.5, current.Temperature)
	assert.Equal(t, 25.1, current.FeelsLike)
	assert.Equal(t, 60, current.Humidity)
	assert.Equal(t, 12.2, current.WindSpeed)
	assert.Equal(t, "Partly cloudy", current.Description)
	assert.Equal(t, 10.0, current.Visibility)
	assert.Equal(t, 1015.0, current.Pressure)
}

func TestCurrent_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": 2006, "message": "API key invalid"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, zap.NewNop())
	current, err := client.Current(context.Background(), "Nairobi")

	require.Error(t, err)
	assert.Nil(t, current)
	assert.Contains(t, err.Error(), "401")
}

func TestCurrent_EmptyLocation(t *testing.T) {
	client := NewClient(testConfig("http://localhost:0"), nil, zap.NewNop())
	_, err := client.Current(context.Background(), "")
	require.Error(t, err)
}
