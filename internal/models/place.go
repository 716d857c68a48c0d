package models

import "time"

const (
	PlaceCategoryNature     = "nature"
	PlaceCategorySeas       = "seas"
	PlaceCategoryHistorical = "historical"
)

type Place struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:30;not null" json:"category"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
