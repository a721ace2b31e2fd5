package handler

import (
	"net/http"
	"time"

	"farm-service/internal/dashboard"
	"farm-service/internal/middleware"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregated farm snapshot
type DashboardHandler struct {
	aggregator *dashboard.Aggregator
}

// NewDashboardHandler creates a dashboard handler over the given aggregator
func NewDashboardHandler(aggregator *dashboard.Aggregator) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator}
}

// GetSnapshot computes and returns the dashboard snapshot for the caller.
// A degraded snapshot (some queries failed) is still returned with the
// failed queries named, so the client can tell computed zeros from unknowns.
func (h *DashboardHandler) GetSnapshot(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)

	prometheus.DashboardSnapshotCounter.Inc()
	start := time.Now()

	snap := h.aggregator.Snapshot(c.Request().Context(), userID, time.Now())

	prometheus.DashboardSnapshotDuration.Observe(time.Since(start).Seconds())
	for _, q := range snap.FailedQueries {
		prometheus.DashboardQueryFailureCounter.WithLabelValues(q).Inc()
	}

	if !snap.Complete() {
		log.Warn("Dashboard snapshot degraded",
			zap.Uint("user_id", userID),
			zap.Strings("failed_queries", snap.FailedQueries))
	}

	return c.JSON(http.StatusOK, snap)
}
