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

// CropRequest defines the structure for crop creation/update requests
type CropRequest struct {
	LandParcelID        *uint      `json:"land_parcel_id"`
	Name                string     `json:"name"`
	Variety             string     `json:"variety"`
	AreaPlanted         float64    `json:"area_planted"`
	PlantedOn           time.Time  `json:"planted_on"`
	ExpectedHarvestDate time.Time  `json:"expected_harvest_date"`
	ActualHarvestDate   *time.Time `json:"actual_harvest_date"`
	Status              string     `json:"status"`
	YieldExpected       float64    `json:"yield_expected"`
	YieldActual         *float64   `json:"yield_actual"`
	Notes               string     `json:"notes"`
}

// cropView decorates a crop with the upcoming-harvest badge. The badge uses
// the same predicate as the dashboard count so the two cannot drift.
type cropView struct {
	model.Crop
	UpcomingHarvest bool `json:"upcoming_harvest"`
}

// ListCrops retrieves the caller's crops, optionally filtered by status
func ListCrops(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("crops", "list")

	query := database.GetDB().Where("user_id = ?", userID)
	if status := c.QueryParam("status"); status != "" {
		if !model.ValidCropStatus(status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop status"})
		}
		query = query.Where("status = ?", status)
	}

	var crops []model.Crop
	if result := query.Order("created_at DESC").Find(&crops); result.Error != nil {
		log.Error("Failed to list crops", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve crops"})
	}

	now := time.Now()
	views := make([]cropView, 0, len(crops))
	for i := range crops {
		views = append(views, cropView{
			Crop:            crops[i],
			UpcomingHarvest: dashboard.IsUpcomingHarvest(&crops[i], now),
		})
	}

	return c.JSON(http.StatusOK, views)
}

// GetCrop retrieves a single crop by ID
func GetCrop(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("crops", "get")

	var crop model.Crop
	result := database.GetDB().Where("user_id = ?", userID).First(&crop, c.Param("id"))
	if result.Error != nil {
		log.Warn("Crop not found", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "crop not found"})
	}

	return c.JSON(http.StatusOK, cropView{
		Crop:            crop,
		UpcomingHarvest: dashboard.IsUpcomingHarvest(&crop, time.Now()),
	})
}

// CreateCrop creates a new crop for the caller
func CreateCrop(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("crops", "create")

	var req CropRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Status == "" {
		req.Status = model.CropStatusPlanned
	}
	if !model.ValidCropStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop status"})
	}

	crop := model.Crop{
		UserID:              userID,
		LandParcelID:        req.LandParcelID,
		Name:                req.Name,
		Variety:             req.Variety,
		AreaPlanted:         req.AreaPlanted,
		PlantedOn:           req.PlantedOn,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
		ActualHarvestDate:   req.ActualHarvestDate,
		Status:              req.Status,
		YieldExpected:       req.YieldExpected,
		YieldActual:         req.YieldActual,
		Notes:               req.Notes,
	}

	if result := database.GetDB().Create(&crop); result.Error != nil {
		log.Error("Failed to create crop", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create crop"})
	}

	log.Info("Crop created", zap.Uint("id", crop.ID), zap.String("name", crop.Name))
	return c.JSON(http.StatusCreated, crop)
}

// UpdateCrop updates an existing crop
func UpdateCrop(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("crops", "update")

	var crop model.Crop
	result := database.GetDB().Where("user_id = ?", userID).First(&crop, c.Param("id"))
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "crop not found"})
	}

	var req CropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Status != "" && !model.ValidCropStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop status"})
	}

	crop.LandParcelID = req.LandParcelID
	crop.Name = req.Name
	crop.Variety = req.Variety
	crop.AreaPlanted = req.AreaPlanted
	crop.PlantedOn = req.PlantedOn
	crop.ExpectedHarvestDate = req.ExpectedHarvestDate
	crop.ActualHarvestDate = req.ActualHarvestDate
	if req.Status != "" {
		crop.Status = req.Status
	}
	crop.YieldExpected = req.YieldExpected
	crop.YieldActual = req.YieldActual
	crop.Notes = req.Notes

	if result := database.GetDB().Save(&crop); result.Error != nil {
		log.Error("Failed to update crop", zap.Uint("id", crop.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update crop"})
	}

	return c.JSON(http.StatusOK, crop)
}

// DeleteCrop deletes a crop. Financial records referencing it keep a
// dangling crop_id; no cascade is performed.
func DeleteCrop(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("crops", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.Crop{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete crop", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete crop"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "crop not found"})
	}

	log.Info("Crop deleted", zap.String("id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "crop deleted"})
}
