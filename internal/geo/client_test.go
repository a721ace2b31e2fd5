package geo

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

func newTestClient(baseURL string) *Client {
	return NewClient(&config.GeocoderConfig{
		BaseURL:   baseURL,
		UserAgent: "farm-service-test",
		Timeout:   2 * time.Second,
	}, zap.NewNop())
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Eldoret", r.URL.Query().Get("q"))
		assert.Equal(t, "farm-service-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"lat": "0.5143", "lon": "35.2698",
			"display_name": "Eldoret, Uasin Gishu, Kenya",
			"address": {"city": "Eldoret", "country": "Kenya"}
		}]`))
	}))
	defer server.Close()

	places, err := newTestClient(server.URL).Search(context.Background(), "Eldoret")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, 0.5143, places[0].Latitude)
	assert.Equal(t, 35.2698, places[0].Longitude)
	assert.Equal(t, "Eldoret, Kenya", places[0].Label())
}

func TestReverse_TownFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"lat": "-1.2921", "lon": "36.8219",
			"display_name": "Limuru, Kiambu, Kenya",
			"address": {"town": "Limuru", "country": "Kenya"}
		}`))
	}))
	defer server.Close()

	place, err := newTestClient(server.URL).Reverse(context.Background(), -1.2921, 36.8219)

	require.NoError(t, err)
	assert.Equal(t, "Limuru", place.City)
	assert.Equal(t, -1.2921, place.Latitude)
	assert.Equal(t, 36.8219, place.Longitude)
}

func TestReverse_NoAddressFallsBackToCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat": "10.1", "lon": "20.2"}`))
	}))
	defer server.Close()

	place, err := newTestClient(server.URL).Reverse(context.Background(), 10.1, 20.2)

	require.NoError(t, err)
	assert.Equal(t, "10.1000, 20.2000", place.Label())
}

func TestSearch_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), "anywhere")
	require.Error(t, err)
}
