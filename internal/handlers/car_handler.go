package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahhal-app/tourism-api/internal/audit"
	"github.com/rahhal-app/tourism-api/internal/blob"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/httpresp"
	"github.com/rahhal-app/tourism-api/internal/middleware"
	"github.com/rahhal-app/tourism-api/internal/models"
	ucReservation "github.com/rahhal-app/tourism-api/internal/usecase/reservation"
	"github.com/rahhal-app/tourism-api/internal/validation"
)

type CarHandler struct {
	db         *gorm.DB
	blobs      *blob.Service
	audit      *audit.Dispatcher
	reserveCar *ucReservation.ReserveCar
}

func NewCarHandler(
	db *gorm.DB,
	blobs *blob.Service,
	audit *audit.Dispatcher,
	reserveCar *ucReservation.ReserveCar,
) *CarHandler {
	return &CarHandler{
		db:         db,
		blobs:      blobs,
		audit:      audit,
		reserveCar: reserveCar,
	}
}

// --------- Requests ---------

type AddCarRequest struct {
	Model              string `form:"model" binding:"required"`
	RegistrationNumber string `form:"registration_number" binding:"required,max=50"`

	Seats           *int     `form:"seats"`
	Doors           *int     `form:"doors"`
	AirConditioning *bool    `form:"air_conditioning"`
	Transmission    string   `form:"transmission"`
	FuelType        string   `form:"fuel_type"`
	FuelFillUp      string   `form:"fuel_fill_up"`
	PricePerKM      *float64 `form:"price_per_km"`

	PhysicalDisabilityAccessible *bool `form:"physical_disability_accessible"`
}

// ReserveCarRequest is the body of POST /cars/searchcar, which despite
// its path performs the reservation.
type ReserveCarRequest struct {
	CarID uint `json:"car_id" binding:"required"`

	DateOfReceipt string `json:"date_of_receipt" binding:"required,datetime=2006-01-02"`
	DateOfReturn  string `json:"date_of_return" binding:"required,datetime=2006-01-02"`

	BackToSameLocation       *bool  `json:"back_to_same_location"`
	LocationOfReceipt        string `json:"location_of_receipt"`
	LocationOfDelivery       string `json:"location_of_delivery"`
	NeedDriver               *bool  `json:"need_driver"`
	EnablePhysicalDisability *bool  `json:"enable_physical_disability"`
}

// --------- Handlers ---------

func (h *CarHandler) AddCar(c *gin.Context) {
	var req AddCarRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	var count int64
	h.db.Model(&models.Car{}).
		Where("registration_number = ?", req.RegistrationNumber).
		Count(&count)
	if count > 0 {
		httperr.ValidationFailed(c, validation.Taken("registration_number"))
		return
	}

	// Image is optional for cars.
	imageRef, ok := storeUpload(c, h.blobs, "cars", false, false)
	if !ok {
		return
	}

	car := models.Car{
		Model:              req.Model,
		RegistrationNumber: req.RegistrationNumber,
		Transmission:       req.Transmission,
		FuelType:           req.FuelType,
		FuelFillUp:         req.FuelFillUp,
		Image:              imageRef,
	}
	if req.Seats != nil {
		car.Seats = *req.Seats
	}
	if req.Doors != nil {
		car.Doors = *req.Doors
	}
	if req.AirConditioning != nil {
		car.AirConditioning = *req.AirConditioning
	}
	if req.PricePerKM != nil {
		car.PricePerKM = *req.PricePerKM
	}
	if req.PhysicalDisabilityAccessible != nil {
		car.PhysicalDisabilityAccessible = *req.PhysicalDisabilityAccessible
	}

	if err := h.db.Create(&car).Error; err != nil {
		h.blobs.Remove(c.Request.Context(), imageRef)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.ValidationFailed(c, validation.Taken("registration_number"))
			return
		}
		httperr.Internal(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "car_added",
		Entity:   "car",
		EntityID: &car.ID,
	})

	httpresp.Created(c, "Car added successfully", car)
}

func (h *CarHandler) Reserve(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req ReserveCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	receipt, _ := parseDate(req.DateOfReceipt)
	ret, _ := parseDate(req.DateOfReturn)

	res, err := h.reserveCar.Execute(c.Request.Context(), user, ucReservation.ReserveCarInput{
		CarID:         req.CarID,
		DateOfReceipt: receipt,
		DateOfReturn:  ret,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeCarNotFound):
			httperr.NotFound(c, "The selected car does not exist")
		case httperr.IsBusiness(err, httperr.CodeAlreadyReserved):
			httperr.BadRequest(c, "The selected car is already reserved for the specified dates")
		case httperr.IsBusiness(err, httperr.CodeInvalidDates):
			httperr.BadRequest(c, "The return date must not be before the receipt date")
		default:
			httperr.Internal(c, err)
		}
		return
	}

	httpresp.OK(c, "Reservation saved successfully", res)
}
