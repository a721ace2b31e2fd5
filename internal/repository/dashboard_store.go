package repository

import (
	"context"

	"farm-service/internal/model"

	"gorm.io/gorm"
)

// DashboardStore implements dashboard.Store on top of gorm. Every query is
// scoped to the owning user id; the field projections mirror what the
// aggregator actually reduces.
type DashboardStore struct {
	db *gorm.DB
}

// NewDashboardStore creates a store over the given database handle
func NewDashboardStore(db *gorm.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// LandParcelAreas returns the area column of the user's land parcels
func (s *DashboardStore) LandParcelAreas(ctx context.Context, userID uint) ([]float64, error) {
	var areas []float64
	err := s.db.WithContext(ctx).
		Model(&model.LandParcel{}).
		Where("user_id = ?", userID).
		Pluck("area", &areas).Error
	return areas, err
}

// CropsByStatus returns the user's crops whose status is in the given set
func (s *DashboardStore) CropsByStatus(ctx context.Context, userID uint, statuses []string) ([]model.Crop, error) {
	var crops []model.Crop
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Find(&crops).Error
	return crops, err
}

// InventoryItems returns all of the user's inventory items
func (s *DashboardStore) InventoryItems(ctx context.Context, userID uint) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

// Tools returns all of the user's tools and equipment
func (s *DashboardStore) Tools(ctx context.Context, userID uint) ([]model.ToolEquipment, error) {
	var tools []model.ToolEquipment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tools).Error
	return tools, err
}

// FinancialAmounts returns the amount column of the user's financial records
// of the given type
func (s *DashboardStore) FinancialAmounts(ctx context.Context, userID uint, recordType string) ([]float64, error) {
	var amounts []float64
	err := s.db.WithContext(ctx).
		Model(&model.FinancialRecord{}).
		Where("user_id = ? AND type = ?", userID, recordType).
		Pluck("amount", &amounts).Error
	return amounts, err
}

// RecentNotifications returns the user's newest notifications, newest first
func (s *DashboardStore) RecentNotifications(ctx context.Context, userID uint, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}
