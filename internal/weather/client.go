package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"farm-service/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Current is the flattened view of current conditions served to the UI
type Current struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Visibility  float64 `json:"visibility"`
	Pressure    float64 `json:"pressure"`
}

// providerResponse mirrors the weatherapi.com current.json payload
type providerResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		FeelsC    float64 `json:"feelslike_c"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		VisKm      float64 `json:"vis_km"`
		PressureMb float64 `json:"pressure_mb"`
	} `json:"current"`
}

// Client fetches current conditions from the weather provider, with an
// optional Redis cache in front (the UI refreshes every 10 minutes, so
// responses are cached for that long by default).
type Client struct {
	httpClient *resty.Client
	apiKey     string
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewClient creates a weather client. cache may be nil to disable caching.
func NewClient(cfg *config.WeatherConfig, cache *redis.Client, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
	}
}

// Current returns current conditions for the given free-form location
func (c *Client) Current(ctx context.Context, location string) (*Current, error) {
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}

	cacheKey := "weather:" + strings.ToLower(strings.TrimSpace(location))
	if cached := c.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var payload providerResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"q":   location,
			"aqi": "no",
		}).
		SetResult(&payload).
		Get("/current.json")
	if err != nil {
		c.logger.Error("weather API call failed", zap.String("location", location), zap.Error(err))
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("weather API returned error",
			zap.String("location", location),
			zap.Int("status_code", resp.StatusCode()))
		return nil, fmt.Errorf("weather API error: status %d", resp.StatusCode())
	}

	current := &Current{
		Location:    payload.Location.Name + ", " + payload.Location.Country,
		Temperature: payload.Current.TempC,
		FeelsLike:   payload.Current.FeelsC,
		Humidity:    payload.Current.Humidity,
		WindSpeed:   payload.Current.WindKph,
		Description: payload.Current.Condition.Text,
		Icon:        payload.Current.Condition.Icon,
		Visibility:  payload.Current.VisKm,
		Pressure:    payload.Current.PressureMb,
	}

	c.toCache(ctx, cacheKey, current)
	return current, nil
}

func (c *Client) fromCache(ctx context.Context, key string) *Current {
	if c.cache == nil {
		return nil
	}
	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("weather cache read failed", zap.Error(err))
		}
		return nil
	}
	var current Current
	if err := json.Unmarshal(data, &current); err != nil {
		return nil
	}
	return &current
}

func (c *Client) toCache(ctx context.Context, key string, current *Current) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(current)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("weather cache write failed", zap.Error(err))
	}
}
