package model

import (
	"time"
)

// Crop statuses form a closed enumeration. A crop is "active" when its
// status is planted or growing.
const (
	CropStatusPlanned   = "planned"
	CropStatusPlanted   = "planted"
	CropStatusGrowing   = "growing"
	CropStatusHarvested = "harvested"
	CropStatusFailed    = "failed"
)

// ActiveCropStatuses are the statuses counted as in-cultivation
var ActiveCropStatuses = []string{CropStatusPlanted, CropStatusGrowing}

// ValidCropStatus reports whether s is a member of the status enumeration
func ValidCropStatus(s string) bool {
	switch s {
	case CropStatusPlanned, CropStatusPlanted, CropStatusGrowing, CropStatusHarvested, CropStatusFailed:
		return true
	}
	return false
}

// Crop represents a planting on the farm, optionally tied to a land parcel
type Crop struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	UserID              uint       `json:"user_id" gorm:"index;not null"`
	LandParcelID        *uint      `json:"land_parcel_id,omitempty" gorm:"index"`
	Name                string     `json:"name" gorm:"type:varchar(100);not null"`
	Variety             string     `json:"variety,omitempty" gorm:"type:varchar(100)"`
	AreaPlanted         float64    `json:"area_planted"`
	PlantedOn           time.Time  `json:"planted_on"`
	ExpectedHarvestDate time.Time  `json:"expected_harvest_date"`
	ActualHarvestDate   *time.Time `json:"actual_harvest_date,omitempty"`
	Status              string     `json:"status" gorm:"type:varchar(20);default:planned;index"`
	YieldExpected       float64    `json:"yield_expected"`
	YieldActual         *float64   `json:"yield_actual,omitempty"`
	Notes               string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
