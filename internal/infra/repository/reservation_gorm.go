package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rahhal-app/tourism-api/internal/domain/reservation"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Resources
// --------------------------------------------------

func (r *ReservationGormRepository) GetCar(
	ctx context.Context,
	id uint,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *ReservationGormRepository) GetHotel(
	ctx context.Context,
	id uint,
) (*models.Hotel, error) {

	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// --------------------------------------------------
// Car reservation
// --------------------------------------------------

// ReserveCar runs the availability check and the insert inside one
// transaction. On postgres the car row is locked first, so two requests
// for the same car serialize; the exclusion constraint on
// (car_id, daterange) backstops the check if anything slips through.
func (r *ReservationGormRepository) ReserveCar(
	ctx context.Context,
	res *models.CarReservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if tx.Dialector.Name() == "postgres" {
			// sqlite (tests) has no FOR UPDATE
			var car models.Car
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&car, res.CarID).Error; err != nil {
				return err
			}
		}

		// Three-clause overlap test with inclusive bounds: a reservation
		// touching the candidate on either endpoint conflicts.
		var count int64
		if err := tx.Model(&models.CarReservation{}).
			Where(
				`car_id = ? AND (
                    (arrival_date BETWEEN ? AND ?)
                    OR (return_date BETWEEN ? AND ?)
                    OR (arrival_date <= ? AND return_date >= ?)
                )`,
				res.CarID,
				res.ArrivalDate, res.ReturnDate,
				res.ArrivalDate, res.ReturnDate,
				res.ArrivalDate, res.ReturnDate,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeAlreadyReserved)
		}

		if err := tx.Create(res).Error; err != nil {
			if isOverlapConstraint(err) {
				return httperr.ErrBusiness(httperr.CodeAlreadyReserved)
			}
			return err
		}

		return nil
	})
}

// isOverlapConstraint detects the range-exclusion constraint firing at
// insert time (SQLSTATE 23P01).
func isOverlapConstraint(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// --------------------------------------------------
// Hotel reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateHotelReservation(
	ctx context.Context,
	res *models.HotelReservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ReservationGormRepository) ListCarReservations(
	ctx context.Context,
) ([]models.CarReservation, error) {

	var out []models.CarReservation
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListHotelReservations(
	ctx context.Context,
) ([]models.HotelReservation, error) {

	var out []models.HotelReservation
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
