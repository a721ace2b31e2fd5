package handler

import (
	"net/http"

	"farm-service/internal/weather"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WeatherHandler serves current weather conditions
type WeatherHandler struct {
	client *weather.Client
}

// NewWeatherHandler creates a weather handler over the given client
func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// GetCurrent returns current conditions for the requested location
func (h *WeatherHandler) GetCurrent(c echo.Context) error {
	log := logger.FromEcho(c)

	location := c.QueryParam("location")
	if location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location query parameter is required"})
	}

	current, err := h.client.Current(c.Request().Context(), location)
	prometheus.RecordExternalAPICall("weather", err)
	if err != nil {
		log.Error("Failed to fetch weather", zap.String("location", location), zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "unable to fetch weather data"})
	}

	return c.JSON(http.StatusOK, current)
}
