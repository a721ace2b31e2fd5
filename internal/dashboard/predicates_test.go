package dashboard

import (
	"testing"
	"time"

	"farm-service/internal/model"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func TestIsUpcomingHarvest_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		harvest time.Time
		want    bool
	}{
		{"exactly now", now, true},
		{"in 10 days", now.Add(10 * 24 * time.Hour), true},
		{"exactly 30 days out", now.Add(30 * 24 * time.Hour), true},
		{"31 days out", now.Add(31 * 24 * time.Hour), false},
		{"yesterday", now.Add(-24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crop := &model.Crop{ExpectedHarvestDate: tt.harvest}
			assert.Equal(t, tt.want, IsUpcomingHarvest(crop, now))
		})
	}
}

func TestIsLowStock_Boundaries(t *testing.T) {
	assert.True(t, IsLowStock(&model.InventoryItem{Quantity: 5, AlertLevel: 5}))
	assert.True(t, IsLowStock(&model.InventoryItem{Quantity: 2, AlertLevel: 5}))
	assert.False(t, IsLowStock(&model.InventoryItem{Quantity: 5.01, AlertLevel: 5}))
	assert.False(t, IsLowStock(&model.InventoryItem{Quantity: 20, AlertLevel: 5}))
}

func TestIsMaintenanceDue(t *testing.T) {
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	assert.False(t, IsMaintenanceDue(&model.ToolEquipment{}, now), "no date means not due")
	assert.True(t, IsMaintenanceDue(&model.ToolEquipment{NextMaintenanceDate: at(0)}, now))
	assert.True(t, IsMaintenanceDue(&model.ToolEquipment{NextMaintenanceDate: at(-48 * time.Hour)}, now), "overdue counts")
	assert.True(t, IsMaintenanceDue(&model.ToolEquipment{NextMaintenanceDate: at(30 * 24 * time.Hour)}, now))
	assert.False(t, IsMaintenanceDue(&model.ToolEquipment{NextMaintenanceDate: at(31 * 24 * time.Hour)}, now))
}
