package reservation

import (
	"context"
	"time"

	"github.com/rahhal-app/tourism-api/internal/audit"
	domain "github.com/rahhal-app/tourism-api/internal/domain/reservation"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ReserveCarInput struct {
	CarID uint

	DateOfReceipt time.Time
	DateOfReturn  time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ReserveCar struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReserveCar(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReserveCar {
	return &ReserveCar{
		repo:  repo,
		audit: audit,
	}
}

// Execute books the car for the user's date range. The contact fields on
// the reservation come from the requesting user, as the original flow did.
func (uc *ReserveCar) Execute(
	ctx context.Context,
	user *models.User,
	in ReserveCarInput,
) (*models.CarReservation, error) {

	if in.DateOfReturn.Before(in.DateOfReceipt) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDates)
	}

	car, err := uc.repo.GetCar(ctx, in.CarID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCarNotFound)
	}

	res := &models.CarReservation{
		CarID:       car.ID,
		UserID:      user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		ArrivalDate: in.DateOfReceipt,
		ReturnDate:  in.DateOfReturn,
	}

	// Availability check and insert are one transaction in the repository.
	if err := uc.repo.ReserveCar(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "car_reserved",
		Entity:   "car_reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
