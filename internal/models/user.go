package models

import "time"

const (
	AccountHearingDisability  = "hearing_disability"
	AccountPhysicalDisability = "physical_disability"
	AccountNormal             = "normal"
	AccountTourGuide          = "tour_guide"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	PhoneNumber  string `gorm:"size:255" json:"phone_number"`
	AccountType  string `gorm:"size:30;default:'normal'" json:"account_type"`
	Image        string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
