package model

import (
	"time"
)

// LandParcel represents a plot of land owned by a user. Area is in acres.
type LandParcel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Area      float64   `json:"area" gorm:"not null"`
	SoilType  string    `json:"soil_type,omitempty" gorm:"type:varchar(50)"`
	Location  string    `json:"location,omitempty" gorm:"type:varchar(255)"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
