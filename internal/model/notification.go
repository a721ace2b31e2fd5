package model

import (
	"time"
)

// Notification types
const (
	NotificationTypeHarvest     = "harvest"
	NotificationTypeMaintenance = "maintenance"
	NotificationTypeInventory   = "inventory"
	NotificationTypeFinancial   = "financial"
	NotificationTypeGeneral     = "general"
)

// Notification statuses
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Notification represents an alert shown to the user. The dashboard's
// recent-activity list is the five newest notifications.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"type:varchar(150);not null"`
	Message   string    `json:"message" gorm:"type:text"`
	Type      string    `json:"type" gorm:"type:varchar(20);default:general"`
	Status    string    `json:"status" gorm:"type:varchar(10);default:unread;index"`
	Priority  string    `json:"priority" gorm:"type:varchar(10);default:medium"`
	CreatedAt time.Time `json:"created_at"`
}
