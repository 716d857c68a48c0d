package reservation

import (
	"context"

	"github.com/rahhal-app/tourism-api/internal/models"
)

type Repository interface {
	// -------- Resources --------
	GetCar(
		ctx context.Context,
		id uint,
	) (*models.Car, error)

	GetHotel(
		ctx context.Context,
		id uint,
	) (*models.Hotel, error)

	// -------- Car reservation (conflict-checked) --------
	ReserveCar(
		ctx context.Context,
		res *models.CarReservation,
	) error

	// -------- Hotel reservation --------
	CreateHotelReservation(
		ctx context.Context,
		res *models.HotelReservation,
	) error

	// -------- Listing --------
	ListCarReservations(
		ctx context.Context,
	) ([]models.CarReservation, error)

	ListHotelReservations(
		ctx context.Context,
	) ([]models.HotelReservation, error)
}
