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

// InventoryItemRequest defines the structure for inventory creation/update requests
type InventoryItemRequest struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Category     string     `json:"category"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	Supplier     string     `json:"supplier"`
	PurchaseDate *time.Time `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	AlertLevel   float64    `json:"alert_level"`
	CostPerUnit  float64    `json:"cost_per_unit"`
}

// inventoryView decorates an item with the low-stock badge, computed by the
// same predicate the dashboard count uses
type inventoryView struct {
	model.InventoryItem
	LowStock bool `json:"low_stock"`
}

// ListInventory retrieves the caller's inventory, optionally filtered by type
func ListInventory(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("inventory", "list")

	query := database.GetDB().Where("user_id = ?", userID)
	if itemType := c.QueryParam("type"); itemType != "" {
		if !model.ValidInventoryType(itemType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inventory type"})
		}
		query = query.Where("type = ?", itemType)
	}

	var items []model.InventoryItem
	if result := query.Order("created_at DESC").Find(&items); result.Error != nil {
		log.Error("Failed to list inventory", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve inventory"})
	}

	views := make([]inventoryView, 0, len(items))
	for i := range items {
		views = append(views, inventoryView{
			InventoryItem: items[i],
			LowStock:      dashboard.IsLowStock(&items[i]),
		})
	}

	return c.JSON(http.StatusOK, views)
}

// GetInventoryItem retrieves a single inventory item by ID
func GetInventoryItem(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("inventory", "get")

	var item model.InventoryItem
	result := database.GetDB().Where("user_id = ?", userID).First(&item, c.Param("id"))
	if result.Error != nil {
		log.Warn("Inventory item not found", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "inventory item not found"})
	}

	return c.JSON(http.StatusOK, inventoryView{
		InventoryItem: item,
		LowStock:      dashboard.IsLowStock(&item),
	})
}

// CreateInventoryItem creates a new inventory item for the caller
func CreateInventoryItem(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("inventory", "create")

	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Type == "" {
		req.Type = model.InventoryTypeOther
	}
	if !model.ValidInventoryType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inventory type"})
	}

	item := model.InventoryItem{
		UserID:       userID,
		Name:         req.Name,
		Type:         req.Type,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Supplier:     req.Supplier,
		PurchaseDate: req.PurchaseDate,
		ExpiryDate:   req.ExpiryDate,
		AlertLevel:   req.AlertLevel,
		CostPerUnit:  req.CostPerUnit,
	}

	if result := database.GetDB().Create(&item); result.Error != nil {
		log.Error("Failed to create inventory item", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create inventory item"})
	}

	log.Info("Inventory item created", zap.Uint("id", item.ID), zap.String("name", item.Name))
	return c.JSON(http.StatusCreated, item)
}

// UpdateInventoryItem updates an existing inventory item
func UpdateInventoryItem(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("inventory", "update")

	var item model.InventoryItem
	result := database.GetDB().Where("user_id = ?", userID).First(&item, c.Param("id"))
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "inventory item not found"})
	}

	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Type != "" && !model.ValidInventoryType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inventory type"})
	}

	item.Name = req.Name
	if req.Type != "" {
		item.Type = req.Type
	}
	item.Category = req.Category
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.Supplier = req.Supplier
	item.PurchaseDate = req.PurchaseDate
	item.ExpiryDate = req.ExpiryDate
	item.AlertLevel = req.AlertLevel
	item.CostPerUnit = req.CostPerUnit

	if result := database.GetDB().Save(&item); result.Error != nil {
		log.Error("Failed to update inventory item", zap.Uint("id", item.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update inventory item"})
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem deletes an inventory item
func DeleteInventoryItem(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("inventory", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.InventoryItem{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete inventory item", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete inventory item"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "inventory item not found"})
	}

	log.Info("Inventory item deleted", zap.String("id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "inventory item deleted"})
}
