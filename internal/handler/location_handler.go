package handler

import (
	"net/http"
	"strconv"

	"farm-service/internal/geo"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LocationHandler serves forward and reverse geocoding lookups
type LocationHandler struct {
	client *geo.Client
}

// NewLocationHandler creates a location handler over the given geocoding client
func NewLocationHandler(client *geo.Client) *LocationHandler {
	return &LocationHandler{client: client}
}

// Search resolves a free-form query to candidate places
func (h *LocationHandler) Search(c echo.Context) error {
	log := logger.FromEcho(c)

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q query parameter is required"})
	}

	places, err := h.client.Search(c.Request().Context(), query)
	prometheus.RecordExternalAPICall("geocoder", err)
	if err != nil {
		log.Error("Geocoding search failed", zap.String("query", query), zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "unable to geocode location"})
	}

	return c.JSON(http.StatusOK, places)
}

// Reverse resolves coordinates to a place
func (h *LocationHandler) Reverse(c echo.Context) error {
	log := logger.FromEcho(c)

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lat must be a number"})
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lon must be a number"})
	}

	place, err := h.client.Reverse(c.Request().Context(), lat, lon)
	prometheus.RecordExternalAPICall("geocoder", err)
	if err != nil {
		log.Error("Reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "unable to geocode location"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"place": place,
		"label": place.Label(),
	})
}
