package models

import "time"

type HotelReservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID uint  `json:"hotel_id"`
	Hotel   Hotel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:255;not null" json:"name"`
	PhoneNumber string `gorm:"size:255;not null" json:"phone_number"`

	ArriveDate time.Time `gorm:"type:date" json:"arrive_date"`
	LeaveDate  time.Time `gorm:"type:date" json:"leave_date"`

	NumOfAdults   int `json:"num_of_adults"`
	NumOfChildren int `json:"num_of_children"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
