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

// LandParcelRequest defines the structure for land parcel creation/update requests
type LandParcelRequest struct {
	Name      string   `json:"name"`
	Area      float64  `json:"area"`
	SoilType  string   `json:"soil_type"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

// ListLandParcels retrieves all land parcels owned by the caller
func ListLandParcels(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("land_parcels", "list")

	var parcels []model.LandParcel
	result := database.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&parcels)
	if result.Error != nil {
		log.Error("Failed to list land parcels", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve land parcels"})
	}

	return c.JSON(http.StatusOK, parcels)
}

// GetLandParcel retrieves a single land parcel by ID
func GetLandParcel(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("land_parcels", "get")

	var parcel model.LandParcel
	result := database.GetDB().Where("user_id = ?", userID).First(&parcel, c.Param("id"))
	if result.Error != nil {
		log.Warn("Land parcel not found", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "land parcel not found"})
	}

	return c.JSON(http.StatusOK, parcel)
}

// CreateLandParcel creates a new land parcel for the caller
func CreateLandParcel(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("land_parcels", "create")

	var req LandParcelRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Area < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "area must be non-negative"})
	}

	parcel := model.LandParcel{
		UserID:    userID,
		Name:      req.Name,
		Area:      req.Area,
		SoilType:  req.SoilType,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
	}

	if result := database.GetDB().Create(&parcel); result.Error != nil {
		log.Error("Failed to create land parcel", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create land parcel"})
	}

	log.Info("Land parcel created", zap.Uint("id", parcel.ID), zap.String("name", parcel.Name))
	return c.JSON(http.StatusCreated, parcel)
}

// UpdateLandParcel updates an existing land parcel
func UpdateLandParcel(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("land_parcels", "update")

	var parcel model.LandParcel
	result := database.GetDB().Where("user_id = ?", userID).First(&parcel, c.Param("id"))
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "land parcel not found"})
	}

	var req LandParcelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Area < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "area must be non-negative"})
	}

	parcel.Name = req.Name
	parcel.Area = req.Area
	parcel.SoilType = req.SoilType
	parcel.Location = req.Location
	parcel.Latitude = req.Latitude
	parcel.Longitude = req.Longitude
	parcel.Notes = req.Notes

	if result := database.GetDB().Save(&parcel); result.Error != nil {
		log.Error("Failed to update land parcel", zap.Uint("id", parcel.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update land parcel"})
	}

	return c.JSON(http.StatusOK, parcel)
}

// DeleteLandParcel deletes a land parcel. Crops referencing it keep a
// dangling land_parcel_id; no cascade is performed.
func DeleteLandParcel(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)
	prometheus.RecordCollectionOperation("land_parcels", "delete")

	result := database.GetDB().Where("user_id = ?", userID).Delete(&model.LandParcel{}, c.Param("id"))
	if result.Error != nil {
		log.Error("Failed to delete land parcel", zap.String("id", c.Param("id")), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete land parcel"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "land parcel not found"})
	}

	log.Info("Land parcel deleted", zap.String("id", c.Param("id")))
	return c.JSON(http.StatusOK, echo.Map{"message": "land parcel deleted"})
}
