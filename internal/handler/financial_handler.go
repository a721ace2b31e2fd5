package handler

import (
	"net/http"
	"time"

	"farm-service/internal/middleware"
	"farm-service/internal/model"
	"farm-service/pkg/database"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FinancialRecordRequest defines the structure for financial record creation/update requests
type FinancialRecordRequest struct {
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CropID      *uint     `json:"crop_id"`
}

// ListFinancialRecords retrieves the caller's financial records, optionally
// filtered by type and category
func ListFinancialRecords(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("financial_records", "list")

	query := database.GetDB().Where("user_id = ?", userID)
	if recordType := c.QueryParam("type"); recordType != "" {
		if !model.ValidFinancialType(recordType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid record type"})
		}
		query = query.Where("type = ?", recordType)
	}
	if category := c.QueryParam("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var records []model.FinancialRecord
	if result := query.Order("date DESC").Find(&records); result.Error != nil {
		log.Error("Failed to list financial records", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve financial records"})
	}

	return c.JSON(http.StatusOK, records)
}

// GetFinancialRecord retrieves a single financial record by ID
func GetFinancialRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("financial_records", "get")

	var record model.FinancialRecord
	result := database.GetDB().Where("user_id = ?", userID).First(&record, c.Param("id"))
	if result.Error != nil {
		log.Warn("Financial record not found", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "financial record not found"})
	}

	return c.JSON(http.StatusOK, record)
}

// CreateFinancialRecord creates a new expense or revenue entry
func CreateFinancialRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("financial_records", "create")

	var req FinancialRecordRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if !model.ValidFinancialType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be expense or revenue"})
	}
	if req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category is required"})
	}
	if req.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be non-negative"})
	}

	record := model.FinancialRecord{
		UserID:      userID,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		CropID:      req.CropID,
	}

	if result := database.GetDB().Create(&record); result.Error != nil {
		log.Error("Failed to create financial record", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create financial record"})
	}

	log.Info("Financial record created",
		zap.Uint("id", record.ID),
		zap.String("type", record.Type),
		zap.Float64("amount", record.Amount))
	return c.JSON(http.StatusCreated, record)
}

// UpdateFinancialRecord updates an existing financial record
func UpdateFinancialRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("financial_records", "update")

	var record model.FinancialRecord
	result := database.GetDB().Where("user_id = ?", userID).First(&record, c.Param("id"))
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "financial record not found"})
	}

	var req FinancialRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Type != "" && !model.ValidFinancialType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be expense or revenue"})
	}
	if req.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be non-negative"})
	}

	if req.Type != "" {
		record.Type = req.Type
	}
	record.Category = req.Category
	record.Description = req.Description
	record.Amount = req.Amount
	record.Date = req.Date
	record.CropID = req.CropID

	if result := database.GetDB().Save(&record); result.Error != nil {
		log.Error("Failed to update financial record", zap.Uint("id", record.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update financial record"})
	}

	return c.JSON(http.StatusOK, record)
}

// DeleteFinancialRecord deletes a financial record
func DeleteFinancialRecord(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("financial_records", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.FinancialRecord{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete financial record", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete financial record"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "financial record not found"})
	}

	log.Info("Financial record deleted", zap.String("id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "financial record deleted"})
}
