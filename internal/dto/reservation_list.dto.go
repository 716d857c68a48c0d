package dto

import "github.com/rahhal-app/tourism-api/internal/models"

type ReservationListDTO struct {
	Hotels []models.HotelReservation `json:"hotels"`
	Cars   []models.CarReservation   `json:"cars"`
}
