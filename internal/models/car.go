package models

import "time"

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Model              string `gorm:"size:255;not null" json:"model"`
	RegistrationNumber string `gorm:"size:50;uniqueIndex;not null" json:"registration_number"`

	Seats           int     `json:"seats"`
	Doors           int     `json:"doors"`
	AirConditioning bool    `gorm:"default:false" json:"air_conditioning"`
	Transmission    string  `gorm:"size:50" json:"transmission"`
	FuelType        string  `gorm:"size:50" json:"fuel_type"`
	FuelFillUp      string  `gorm:"size:50" json:"fuel_fill_up"`
	PricePerKM      float64 `json:"price_per_km"`

	PhysicalDisabilityAccessible bool `gorm:"default:false" json:"physical_disability_accessible"`

	Image string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
