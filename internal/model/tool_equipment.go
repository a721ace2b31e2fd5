package model

import (
	"time"
)

// Tool/equipment types
const (
	ToolTypeTool      = "tool"
	ToolTypeMachinery = "machinery"
	ToolTypeVehicle   = "vehicle"
	ToolTypeOther     = "other"
)

// Tool conditions
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

// ValidToolType reports whether s is a member of the type enumeration
func ValidToolType(s string) bool {
	switch s {
	case ToolTypeTool, ToolTypeMachinery, ToolTypeVehicle, ToolTypeOther:
		return true
	}
	return false
}

// ToolEquipment represents a tool, machine or vehicle. Maintenance is due
// when next_maintenance_date is set and falls within the next 30 days.
type ToolEquipment struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	UserID              uint       `json:"user_id" gorm:"index;not null"`
	Name                string     `json:"name" gorm:"type:varchar(100);not null"`
	Type                string     `json:"type" gorm:"type:varchar(20);default:tool"`
	PurchaseDate        *time.Time `json:"purchase_date,omitempty"`
	PurchaseCost        float64    `json:"purchase_cost"`
	Condition           string     `json:"condition" gorm:"type:varchar(20);default:good"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
	Notes               string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
