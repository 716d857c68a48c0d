package models

import "time"

type CarReservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CarID uint `json:"car_id"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:255" json:"name"`
	PhoneNumber string `gorm:"size:255" json:"phone_number"`

	ArrivalDate time.Time `gorm:"type:date" json:"arrival_date"`
	ReturnDate  time.Time `gorm:"type:date" json:"return_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
