package handler

import (
	"net/http"

	"farm-service/internal/middleware"
	"farm-service/internal/model"
	"farm-service/pkg/database"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NotificationRequest defines the structure for notification creation requests
type NotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

// ListNotifications retrieves the caller's notifications newest first,
// optionally filtered by status
func ListNotifications(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("notifications", "list")

	query := database.GetDB().Where("user_id = ?", userID)
	if status := c.QueryParam("status"); status != "" {
		if status != model.NotificationUnread && status != model.NotificationRead {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid notification status"})
		}
		query = query.Where("status = ?", status)
	}

	var notifications []model.Notification
	if result := query.Order("created_at DESC").Find(&notifications); result.Error != nil {
		log.Error("Failed to list notifications", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve notifications"})
	}

	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification creates a notification for the caller
func CreateNotification(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("notifications", "create")

	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if req.Type == "" {
		req.Type = model.NotificationTypeGeneral
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	notification := model.Notification{
		UserID:   userID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		Status:   model.NotificationUnread,
		Priority: req.Priority,
	}

	if result := database.GetDB().Create(&notification); result.Error != nil {
		log.Error("Failed to create notification", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create notification"})
	}

	return c.JSON(http.StatusCreated, notification)
}

// MarkNotificationRead marks one notification as read
func MarkNotificationRead(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("notifications", "update")

	result := database.GetDB().Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("status", model.NotificationRead)
	if result.Error != nil {
		log.Error("Failed to mark notification read", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update notification"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked as read"})
}

// MarkAllNotificationsRead marks all of the caller's unread notifications as read
func MarkAllNotificationsRead(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("notifications", "update")

	result := database.GetDB().Model(&model.Notification{}).
		Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Update("status", model.NotificationRead)
	if result.Error != nil {
		log.Error("Failed to mark notifications read", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update notifications"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "notifications marked as read",
		"updated": result.RowsAffected,
	})
}

// DeleteNotification deletes a notification
func DeleteNotification(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("notifications", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.Notification{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete notification", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete notification"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "notification deleted"})
}
