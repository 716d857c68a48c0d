package models

import "time"

const (
	AccommodationNone     = "none"
	AccommodationHearing  = "hearing"
	AccommodationPhysical = "physical"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Image       string  `gorm:"size:255" json:"image"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	Rate        float64 `json:"rate"`

	Wifi                    bool   `gorm:"default:false" json:"wifi"`
	Pool                    bool   `gorm:"default:false" json:"pool"`
	CarParking              bool   `gorm:"default:false" json:"car_parking"`
	SustainableTravelLevel  int    `json:"sustainable_travel_level"`
	DisabilityAccommodation string `gorm:"size:20;default:'none'" json:"disability_accommodation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
