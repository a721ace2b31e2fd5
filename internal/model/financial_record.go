package model

import (
	"time"
)

// Financial record types
const (
	FinancialTypeExpense = "expense"
	FinancialTypeRevenue = "revenue"
)

// ValidFinancialType reports whether s is a member of the type enumeration
func ValidFinancialType(s string) bool {
	return s == FinancialTypeExpense || s == FinancialTypeRevenue
}

// FinancialRecord represents a single expense or revenue entry, optionally
// tied to a crop
type FinancialRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Type        string    `json:"type" gorm:"type:varchar(10);not null;index"`
	Category    string    `json:"category" gorm:"type:varchar(50);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Date        time.Time `json:"date"`
	CropID      *uint     `json:"crop_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
