package handler

import (
	"net/http"
	"time"

	"farm-service/internal/dashboard"
	"farm-service/internal/middleware"
	"farm-service/internal/model"
	"farm-service/pkg/database"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ToolRequest defines the structure for tool/equipment creation/update requests
type ToolRequest struct {
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	PurchaseCost        float64    `json:"purchase_cost"`
	Condition           string     `json:"condition"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
	Notes               string     `json:"notes"`
}

// toolView decorates a tool with the maintenance-due badge, computed by the
// same predicate the dashboard count uses
type toolView struct {
	model.ToolEquipment
	MaintenanceDue bool `json:"maintenance_due"`
}

// ListTools retrieves the caller's tools, optionally filtered by type
func ListTools(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("tools", "list")

	query := database.GetDB().Where("user_id = ?", userID)
	if toolType := c.QueryParam("type"); toolType != "" {
		if !model.ValidToolType(toolType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tool type"})
		}
		query = query.Where("type = ?", toolType)
	}

	var tools []model.ToolEquipment
	if result := query.Order("created_at DESC").Find(&tools); result.Error != nil {
		log.Error("Failed to list tools", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve tools"})
	}

	now := time.Now()
	views := make([]toolView, 0, len(tools))
	for i := range tools {
		views = append(views, toolView{
			ToolEquipment:  tools[i],
			MaintenanceDue: dashboard.IsMaintenanceDue(&tools[i], now),
		})
	}

	return c.JSON(http.StatusOK, views)
}

// GetTool retrieves a single tool by ID
func GetTool(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("tools", "get")

	var tool model.ToolEquipment
	result := database.GetDB().Where("user_id = ?", userID).First(&tool, c.Param("id"))
	if result.Error != nil {
		log.Warn("Tool not found", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tool not found"})
	}

	return c.JSON(http.StatusOK, toolView{
		ToolEquipment:  tool,
		MaintenanceDue: dashboard.IsMaintenanceDue(&tool, time.Now()),
	})
}

// CreateTool creates a new tool/equipment record for the caller
func CreateTool(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("tools", "create")

	var req ToolRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Type == "" {
		req.Type = model.ToolTypeTool
	}
	if !model.ValidToolType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tool type"})
	}
	if req.Condition == "" {
		req.Condition = model.ConditionGood
	}

	tool := model.ToolEquipment{
		UserID:              userID,
		Name:                req.Name,
		Type:                req.Type,
		PurchaseDate:        req.PurchaseDate,
		PurchaseCost:        req.PurchaseCost,
		Condition:           req.Condition,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Notes:               req.Notes,
	}

	if result := database.GetDB().Create(&tool); result.Error != nil {
		log.Error("Failed to create tool", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create tool"})
	}

	log.Info("Tool created", zap.Uint("id", tool.ID), zap.String("name", tool.Name))
	return c.JSON(http.StatusCreated, tool)
}

// UpdateTool updates an existing tool/equipment record
func UpdateTool(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("tools", "update")

	var tool model.ToolEquipment
	result := database.GetDB().Where("user_id = ?", userID).First(&tool, c.Param("id"))
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tool not found"})
	}

	var req ToolRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Type != "" && !model.ValidToolType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tool type"})
	}

	tool.Name = req.Name
	if req.Type != "" {
		tool.Type = req.Type
	}
	tool.PurchaseDate = req.PurchaseDate
	tool.PurchaseCost = req.PurchaseCost
	if req.Condition != "" {
		tool.Condition = req.Condition
	}
	tool.LastMaintenanceDate = req.LastMaintenanceDate
	tool.NextMaintenanceDate = req.NextMaintenanceDate
	tool.Notes = req.Notes

	if result := database.GetDB().Save(&tool); result.Error != nil {
		log.Error("Failed to update tool", zap.Uint("id", tool.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update tool"})
	}

	return c.JSON(http.StatusOK, tool)
}

// DeleteTool deletes a tool/equipment record
func DeleteTool(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("tools", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.ToolEquipment{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete tool", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete tool"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "tool not found"})
	}

	log.Info("Tool deleted", zap.String("id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "tool deleted"})
}
