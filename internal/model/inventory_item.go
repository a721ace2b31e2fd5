package model

import (
	"time"
)

// Inventory item types
const (
	InventoryTypeSeed       = "seed"
	InventoryTypeFertilizer = "fertilizer"
	InventoryTypePesticide  = "pesticide"
	InventoryTypeSupply     = "supply"
	InventoryTypeOther      = "other"
)

// ValidInventoryType reports whether s is a member of the type enumeration
func ValidInventoryType(s string) bool {
	switch s {
	case InventoryTypeSeed, InventoryTypeFertilizer, InventoryTypePesticide, InventoryTypeSupply, InventoryTypeOther:
		return true
	}
	return false
}

// InventoryItem represents stock on hand. An item is low-stock when
// quantity <= alert_level.
type InventoryItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Type         string     `json:"type" gorm:"type:varchar(20);default:other"`
	Category     string     `json:"category,omitempty" gorm:"type:varchar(50)"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit" gorm:"type:varchar(20)"`
	Supplier     string     `json:"supplier,omitempty" gorm:"type:varchar(100)"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	AlertLevel   float64    `json:"alert_level"`
	CostPerUnit  float64    `json:"cost_per_unit"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
