package reservation

import (
	"context"
	"time"

	"github.com/rahhal-app/tourism-api/internal/audit"
	domain "github.com/rahhal-app/tourism-api/internal/domain/reservation"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/models"
)

type ReserveHotelInput struct {
	HotelID uint

	Name        string
	PhoneNumber string

	ArriveDate time.Time
	LeaveDate  time.Time

	NumOfAdults   int
	NumOfChildren int
}

type ReserveHotel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReserveHotel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReserveHotel {
	return &ReserveHotel{
		repo:  repo,
		audit: audit,
	}
}

// Execute books a hotel stay. Unlike car reservations, hotel bookings
// carry no overlap check: any date range is accepted for a hotel. Known
// gap inherited from the original product behavior, kept until a product
// decision says otherwise.
func (uc *ReserveHotel) Execute(
	ctx context.Context,
	user *models.User,
	in ReserveHotelInput,
) (*models.HotelReservation, error) {

	if !in.ArriveDate.Before(in.LeaveDate) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDates)
	}

	hotel, err := uc.repo.GetHotel(ctx, in.HotelID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeHotelNotFound)
	}

	res := &models.HotelReservation{
		HotelID:       hotel.ID,
		Name:          in.Name,
		PhoneNumber:   in.PhoneNumber,
		ArriveDate:    in.ArriveDate,
		LeaveDate:     in.LeaveDate,
		NumOfAdults:   in.NumOfAdults,
		NumOfChildren: in.NumOfChildren,
	}

	if err := uc.repo.CreateHotelReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "hotel_reserved",
		Entity:   "hotel_reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
