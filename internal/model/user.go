package model

import (
	"time"
)

// User roles
const (
	RoleFarmer  = "farmer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User represents an account and its farm profile
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	FullName  string    `json:"full_name" gorm:"type:varchar(100)"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(30)"`
	FarmName  string    `json:"farm_name,omitempty" gorm:"type:varchar(100)"`
	Location  string    `json:"location,omitempty" gorm:"type:varchar(255)"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:farmer"`
	AvatarURL string    `json:"avatar_url,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
