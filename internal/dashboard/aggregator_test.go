package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"farm-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LandParcelAreas(ctx context.Context, userID uint) ([]float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockStore) CropsByStatus(ctx context.Context, userID uint, statuses []string) ([]model.Crop, error) {
	args := m.Called(ctx, userID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Crop), args.Error(1)
}

func (m *MockStore) InventoryItems(ctx context.Context, userID uint) ([]model.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItem), args.Error(1)
}

func (m *MockStore) Tools(ctx context.Context, userID uint) ([]model.ToolEquipment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ToolEquipment), args.Error(1)
}

func (m *MockStore) FinancialAmounts(ctx context.Context, userID uint, recordType string) ([]float64, error) {
	args := m.Called(ctx, userID, recordType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockStore) RecentNotifications(ctx context.Context, userID uint, limit int) ([]model.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func emptyStore(userID uint) *MockStore {
	store := new(MockStore)
	store.On("LandParcelAreas", mock.Anything, userID).Return([]float64{}, nil)
	store.On("CropsByStatus", mock.Anything, userID, model.ActiveCropStatuses).Return([]model.Crop{}, nil)
	store.On("InventoryItems", mock.Anything, userID).Return([]model.InventoryItem{}, nil)
	store.On("Tools", mock.Anything, userID).Return([]model.ToolEquipment{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeExpense).Return([]float64{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeRevenue).Return([]float64{}, nil)
	store.On("RecentNotifications", mock.Anything, userID, RecentActivityLimit).Return([]model.Notification{}, nil)
	return store
}

func TestSnapshot_Scenario(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	const userID = uint(7)

	store := new(MockStore)
	store.On("LandParcelAreas", mock.Anything, userID).
		Return([]float64{10.5, 5.0}, nil)
	store.On("CropsByStatus", mock.Anything, userID, model.ActiveCropStatuses).
		Return([]model.Crop{
			{Name: "Wheat", Status: model.CropStatusGrowing, ExpectedHarvestDate: now.Add(10 * 24 * time.Hour)},
		}, nil)
	store.On("InventoryItems", mock.Anything, userID).
		Return([]model.InventoryItem{
			{Name: "Seed corn", Quantity: 2, AlertLevel: 5},
			{Name: "Fertilizer", Quantity: 20, AlertLevel: 5},
		}, nil)
	store.On("Tools", mock.Anything, userID).
		Return([]model.ToolEquipment{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeExpense).
		Return([]float64{100, 50}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeRevenue).
		Return([]float64{300}, nil)
	store.On("RecentNotifications", mock.Anything, userID, RecentActivityLimit).
		Return([]model.Notification{{Title: "Harvest soon"}}, nil)

	agg := NewAggregator(store, zap.NewNop())
	snap := agg.Snapshot(context.Background(), userID, now)

	require.True(t, snap.Complete())
	assert.Equal(t, 15.5, snap.TotalLand)
	assert.Equal(t, 1, snap.ActiveCrops)
	assert.Equal(t, 1, snap.UpcomingHarvests)
	assert.Equal(t, 1, snap.LowStockItems)
	assert.Equal(t, 0, snap.MaintenanceDue)
	assert.Equal(t, 150.0, snap.TotalExpenses)
	assert.Equal(t, 300.0, snap.TotalRevenue)
	assert.Equal(t, 150.0, snap.ProfitLoss)
	assert.Len(t, snap.RecentActivity, 1)
	store.AssertExpectations(t)
}

func TestSnapshot_EmptyCollections(t *testing.T) {
	store := emptyStore(3)
	agg := NewAggregator(store, zap.NewNop())

	snap := agg.Snapshot(context.Background(), 3, time.Now())

	require.True(t, snap.Complete())
	assert.Zero(t, snap.TotalLand)
	assert.Zero(t, snap.ActiveCrops)
	assert.Zero(t, snap.UpcomingHarvests)
	assert.Zero(t, snap.LowStockItems)
	assert.Zero(t, snap.MaintenanceDue)
	assert.Zero(t, snap.TotalExpenses)
	assert.Zero(t, snap.TotalRevenue)
	assert.Zero(t, snap.ProfitLoss)
	assert.Empty(t, snap.RecentActivity)
}

func TestSnapshot_MissingIdentity(t *testing.T) {
	store := new(MockStore)
	agg := NewAggregator(store, zap.NewNop())

	snap := agg.Snapshot(context.Background(), 0, time.Now())

	assert.True(t, snap.Complete())
	assert.Zero(t, snap.TotalLand)
	assert.Empty(t, snap.RecentActivity)
	// no user id means no work: the store must never be touched
	store.AssertNotCalled(t, "LandParcelAreas", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "RecentNotifications", mock.Anything, mock.Anything, mock.Anything)
}

func TestSnapshot_QueryFailureIsMarked(t *testing.T) {
	const userID = uint(9)
	store := new(MockStore)
	store.On("LandParcelAreas", mock.Anything, userID).
		Return(nil, errors.New("connection reset"))
	store.On("CropsByStatus", mock.Anything, userID, model.ActiveCropStatuses).
		Return([]model.Crop{{Status: model.CropStatusPlanted, ExpectedHarvestDate: time.Now().Add(48 * time.Hour)}}, nil)
	store.On("InventoryItems", mock.Anything, userID).Return([]model.InventoryItem{}, nil)
	store.On("Tools", mock.Anything, userID).Return([]model.ToolEquipment{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeExpense).Return([]float64{40}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeRevenue).Return([]float64{100}, nil)
	store.On("RecentNotifications", mock.Anything, userID, RecentActivityLimit).Return([]model.Notification{}, nil)

	agg := NewAggregator(store, zap.NewNop())
	snap := agg.Snapshot(context.Background(), userID, time.Now())

	assert.False(t, snap.Complete())
	assert.Equal(t, []string{"land_parcels"}, snap.FailedQueries)
	// the failed branch stays zero, the rest is still computed
	assert.Zero(t, snap.TotalLand)
	assert.Equal(t, 1, snap.ActiveCrops)
	assert.Equal(t, 60.0, snap.ProfitLoss)
}

func TestSnapshot_ProfitLossNegative(t *testing.T) {
	const userID = uint(4)
	store := emptyStore(userID)
	// override the financial branches
	store.ExpectedCalls = nil
	store.On("LandParcelAreas", mock.Anything, userID).Return([]float64{}, nil)
	store.On("CropsByStatus", mock.Anything, userID, model.ActiveCropStatuses).Return([]model.Crop{}, nil)
	store.On("InventoryItems", mock.Anything, userID).Return([]model.InventoryItem{}, nil)
	store.On("Tools", mock.Anything, userID).Return([]model.ToolEquipment{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeExpense).Return([]float64{500, 250}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeRevenue).Return([]float64{200}, nil)
	store.On("RecentNotifications", mock.Anything, userID, RecentActivityLimit).Return([]model.Notification{}, nil)

	agg := NewAggregator(store, zap.NewNop())
	snap := agg.Snapshot(context.Background(), userID, time.Now())

	assert.Equal(t, 750.0, snap.TotalExpenses)
	assert.Equal(t, 200.0, snap.TotalRevenue)
	assert.Equal(t, -550.0, snap.ProfitLoss)
}

func TestSnapshot_RecentActivityBounded(t *testing.T) {
	const userID = uint(5)
	many := make([]model.Notification, 8)
	for i := range many {
		many[i] = model.Notification{Title: "n", CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour)}
	}

	store := emptyStore(userID)
	store.ExpectedCalls = nil
	store.On("LandParcelAreas", mock.Anything, userID).Return([]float64{}, nil)
	store.On("CropsByStatus", mock.Anything, userID, model.ActiveCropStatuses).Return([]model.Crop{}, nil)
	store.On("InventoryItems", mock.Anything, userID).Return([]model.InventoryItem{}, nil)
	store.On("Tools", mock.Anything, userID).Return([]model.ToolEquipment{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeExpense).Return([]float64{}, nil)
	store.On("FinancialAmounts", mock.Anything, userID, model.FinancialTypeRevenue).Return([]float64{}, nil)
	store.On("RecentNotifications", mock.Anything, userID, RecentActivityLimit).Return(many, nil)

	agg := NewAggregator(store, zap.NewNop())
	snap := agg.Snapshot(context.Background(), userID, time.Now())

	require.Len(t, snap.RecentActivity, RecentActivityLimit)
	for i := 1; i < len(snap.RecentActivity); i++ {
		assert.False(t, snap.RecentActivity[i].CreatedAt.After(snap.RecentActivity[i-1].CreatedAt))
	}
}

func TestSumFinite_SkipsMalformedValues(t *testing.T) {
	assert.Equal(t, 15.5, sumFinite([]float64{10.5, math.NaN(), 5.0, math.Inf(1)}))
	assert.Zero(t, sumFinite(nil))
}
