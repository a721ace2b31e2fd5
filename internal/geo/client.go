package geo

import (
	"context"
	"fmt"
	"strconv"

	"farm-service/pkg/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Place is a resolved location
type Place struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
}

// Label returns a short human-readable name for the place, falling back to
// the full display name and finally to raw coordinates
func (p *Place) Label() string {
	if p.City != "" && p.Country != "" {
		return p.City + ", " + p.Country
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)
}

// nominatim result payloads. Coordinates come back as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Client is a Nominatim geocoding client
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient creates a geocoding client. Nominatim requires an identifying
// User-Agent on every request.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{httpClient: httpClient, logger: logger}
}

// Search resolves a free-form query to up to five candidate places
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	var results []nominatimResult
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"format": "json",
			"limit":  "5",
		}).
		SetResult(&results).
		Get("/search")
	if err != nil {
		c.logger.Error("geocoder search failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to call geocoder: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocoder error: status %d", resp.StatusCode())
	}

	places := make([]Place, 0, len(results))
	for i := range results {
		places = append(places, toPlace(&results[i]))
	}
	return places, nil
}

// Reverse resolves coordinates to a place. When the provider returns no
// address details the coordinates-only place is returned rather than an
// error, matching how the map widget degrades.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	var result nominatimResult
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
			"format": "json",
		}).
		SetResult(&result).
		Get("/reverse")
	if err != nil {
		c.logger.Error("reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, fmt.Errorf("failed to call geocoder: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocoder error: status %d", resp.StatusCode())
	}

	place := toPlace(&result)
	place.Latitude = lat
	place.Longitude = lon
	return &place, nil
}

func toPlace(r *nominatimResult) Place {
	lat, _ := strconv.ParseFloat(r.Lat, 64)
	lon, _ := strconv.ParseFloat(r.Lon, 64)

	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}

	return Place{
		Latitude:    lat,
		Longitude:   lon,
		City:        city,
		Country:     r.Address.Country,
		DisplayName: r.DisplayName,
	}
}
