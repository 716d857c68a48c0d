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
	"github.com/rahhal-app/tourism-api/internal/validation"
)

type PlaceHandler struct {
	db    *gorm.DB
	blobs *blob.Service
	audit *audit.Dispatcher
}

func NewPlaceHandler(db *gorm.DB, blobs *blob.Service, audit *audit.Dispatcher) *PlaceHandler {
	return &PlaceHandler{db: db, blobs: blobs, audit: audit}
}

// --------- Requests ---------

type UploadPlaceRequest struct {
	Name        string `form:"name" binding:"required,max=255"`
	Category    string `form:"category" binding:"required,oneof=nature seas historical"`
	Location    string `form:"location" binding:"required,max=255"`
	Description string `form:"description" binding:"required"`
}

// --------- Handlers ---------

func (h *PlaceHandler) Upload(c *gin.Context) {
	var req UploadPlaceRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	imageRef, ok := storeUpload(c, h.blobs, "places", true, true)
	if !ok {
		return
	}

	place := models.Place{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Image:       imageRef,
	}

	if err := h.db.Create(&place).Error; err != nil {
		h.blobs.Remove(c.Request.Context(), imageRef)
		httperr.Internal(c, err)
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "place_added",
		Entity:   "place",
		EntityID: &place.ID,
	})

	httpresp.Created(c, "Place created successfully", place)
}

func (h *PlaceHandler) List(c *gin.Context) {
	var places []models.Place
	if err := h.db.Order("id ASC").Find(&places).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", places)
}

func (h *PlaceHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.NotFound(c, "Place not found")
		return
	}

	var place models.Place
	if err := h.db.First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Place not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", place)
}

func (h *PlaceHandler) Search(c *gin.Context) {
	like := "%" + c.Param("name") + "%"

	var places []models.Place
	if err := h.db.
		Where("name LIKE ?", like).
		Order("id ASC").
		Find(&places).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", places)
}
