package dashboard

import (
	"time"

	"farm-service/internal/model"
)

// HarvestWindow is the rolling window used for upcoming-harvest and
// maintenance-due checks.
const HarvestWindow = 30 * 24 * time.Hour

// IsLowStock reports whether the item's quantity has fallen to or below its
// alert level. The boundary is inclusive: quantity == alert level is low stock.
func IsLowStock(item *model.InventoryItem) bool {
	return item.Quantity <= item.AlertLevel
}

// IsMaintenanceDue reports whether the tool has a next maintenance date that
// is overdue or falls within the next 30 days.
func IsMaintenanceDue(tool *model.ToolEquipment, now time.Time) bool {
	if tool.NextMaintenanceDate == nil {
		return false
	}
	return !tool.NextMaintenanceDate.After(now.Add(HarvestWindow))
}

// IsUpcomingHarvest reports whether the crop's expected harvest date falls in
// the interval [now, now+30d], inclusive at both ends.
func IsUpcomingHarvest(crop *model.Crop, now time.Time) bool {
	d := crop.ExpectedHarvestDate
	return !d.Before(now) && !d.After(now.Add(HarvestWindow))
}
