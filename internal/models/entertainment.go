package models

import "time"

const (
	EntertainmentSeafood       = "seafood"
	EntertainmentGrillsKoshary = "grills_koshary"
	EntertainmentSupermarket   = "supermarket"
)

type Entertainment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	Rate        float64 `json:"rate"`

	PhysicalDisabilityAccessible bool `gorm:"default:false" json:"physical_disability_accessible"`

	Image string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
