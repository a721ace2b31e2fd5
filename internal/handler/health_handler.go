package handler

import (
	"net/http"

	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// MetricsHandler exposes Prometheus metrics
func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
