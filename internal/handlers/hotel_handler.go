package handlers

import (
	"errors"
	"strconv"
	"strings"

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

type HotelHandler struct {
	db           *gorm.DB
	blobs        *blob.Service
	audit        *audit.Dispatcher
	reserveHotel *ucReservation.ReserveHotel
}

func NewHotelHandler(
	db *gorm.DB,
	blobs *blob.Service,
	audit *audit.Dispatcher,
	reserveHotel *ucReservation.ReserveHotel,
) *HotelHandler {
	return &HotelHandler{
		db:           db,
		blobs:        blobs,
		audit:        audit,
		reserveHotel: reserveHotel,
	}
}

// --------- Requests ---------

type UploadHotelRequest struct {
	Name        string   `form:"name" binding:"required,max=255"`
	Location    string   `form:"location" binding:"required,max=255"`
	Description string   `form:"description" binding:"required"`
	Rate        *float64 `form:"rate" binding:"required,gte=0,lte=10"`

	Wifi                    *bool  `form:"wifi"`
	Pool                    *bool  `form:"pool"`
	CarParking              *bool  `form:"car_parking"`
	SustainableTravelLevel  *int   `form:"sustainable_travel_level" binding:"omitempty,gte=0"`
	DisabilityAccommodation string `form:"disability_accommodation" binding:"omitempty,oneof=none hearing physical"`
}

type ReserveHotelRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	PhoneNumber   string `json:"phone_number" binding:"required,max=255"`
	ArriveDate    string `json:"arrive_date" binding:"required,datetime=2006-01-02"`
	LeaveDate     string `json:"leave_date" binding:"required,datetime=2006-01-02"`
	NumOfAdults   int    `json:"num_of_adults" binding:"required,min=1"`
	NumOfChildren *int   `json:"num_of_children" binding:"required,gte=0"`
}

// --------- Handlers ---------

func (h *HotelHandler) Upload(c *gin.Context) {
	var req UploadHotelRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	var count int64
	h.db.Model(&models.Hotel{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.ValidationFailed(c, validation.Taken("name"))
		return
	}

	imageRef, ok := storeUpload(c, h.blobs, "hotels", true, true)
	if !ok {
		return
	}

	hotel := models.Hotel{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Rate:        *req.Rate,
		Image:       imageRef,
	}
	if req.Wifi != nil {
		hotel.Wifi = *req.Wifi
	}
	if req.Pool != nil {
		hotel.Pool = *req.Pool
	}
	if req.CarParking != nil {
		hotel.CarParking = *req.CarParking
	}
	if req.SustainableTravelLevel != nil {
		hotel.SustainableTravelLevel = *req.SustainableTravelLevel
	}
	if req.DisabilityAccommodation != "" {
		hotel.DisabilityAccommodation = req.DisabilityAccommodation
	}

	if err := h.db.Create(&hotel).Error; err != nil {
		h.blobs.Remove(c.Request.Context(), imageRef)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.ValidationFailed(c, validation.Taken("name"))
			return
		}
		httperr.Internal(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "hotel_added",
		Entity:   "hotel",
		EntityID: &hotel.ID,
	})

	httpresp.Created(c, "Hotel created successfully", hotel)
}

// List applies the generic hotel filters. Only whitelisted columns are
// filterable; unknown query params are ignored.
func (h *HotelHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Hotel{})

	for _, flag := range []string{"wifi", "pool", "car_parking"} {
		if v := strings.TrimSpace(c.Query(flag)); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				q = q.Where(flag+" = ?", b)
			}
		}
	}

	if v := strings.TrimSpace(c.Query("disability_accommodation")); v != "" {
		q = q.Where("disability_accommodation = ?", v)
	}

	if v := strings.TrimSpace(c.Query("sustainable_travel_level")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where("sustainable_travel_level = ?", n)
		}
	}

	if v := strings.TrimSpace(c.Query("location")); v != "" {
		q = q.Where("location LIKE ?", "%"+v+"%")
	}

	if v := strings.TrimSpace(c.Query("min_rate")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("rate >= ?", f)
		}
	}
	if v := strings.TrimSpace(c.Query("max_rate")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("rate <= ?", f)
		}
	}

	var hotels []models.Hotel
	if err := q.Order("id ASC").Find(&hotels).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", hotels)
}

func (h *HotelHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.NotFound(c, "Hotel not found")
		return
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Hotel not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", hotel)
}

func (h *HotelHandler) Search(c *gin.Context) {
	like := "%" + c.Param("name") + "%"

	var hotels []models.Hotel
	if err := h.db.
		Where("name LIKE ?", like).
		Order("id ASC").
		Find(&hotels).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", hotels)
}

// Nearby returns the places whose location contains the hotel's location
// as a substring. A heuristic, not geospatial distance.
func (h *HotelHandler) Nearby(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.NotFound(c, "Hotel not found")
		return
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Hotel not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	var places []models.Place
	if err := h.db.
		Where("location LIKE ?", "%"+hotel.Location+"%").
		Order("id ASC").
		Find(&places).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", places)
}

func (h *HotelHandler) Reserve(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		httperr.NotFound(c, "Hotel not found")
		return
	}

	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req ReserveHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	arrive, _ := parseDate(req.ArriveDate)
	leave, _ := parseDate(req.LeaveDate)

	res, err := h.reserveHotel.Execute(c.Request.Context(), user, ucReservation.ReserveHotelInput{
		HotelID:       hotelID,
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		ArriveDate:    arrive,
		LeaveDate:     leave,
		NumOfAdults:   req.NumOfAdults,
		NumOfChildren: *req.NumOfChildren,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeHotelNotFound):
			httperr.NotFound(c, "Hotel not found")
		case httperr.IsBusiness(err, httperr.CodeInvalidDates):
			httperr.BadRequest(c, "The arrive date must be before the leave date")
		default:
			httperr.Internal(c, err)
		}
		return
	}

	httpresp.Created(c, "Reservation created successfully", res)
}
