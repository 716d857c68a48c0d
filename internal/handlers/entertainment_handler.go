package handlers

import (
	"errors"
	"strconv"

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

type EntertainmentHandler struct {
	db    *gorm.DB
	blobs *blob.Service
	audit *audit.Dispatcher
}

func NewEntertainmentHandler(db *gorm.DB, blobs *blob.Service, audit *audit.Dispatcher) *EntertainmentHandler {
	return &EntertainmentHandler{db: db, blobs: blobs, audit: audit}
}

// --------- Requests ---------

type UploadEntertainmentRequest struct {
	Name        string   `form:"name" binding:"required,max=255"`
	Category    string   `form:"category" binding:"required,oneof=seafood grills_koshary supermarket"`
	Location    string   `form:"location" binding:"required,max=255"`
	Description string   `form:"description" binding:"required"`
	Rate        *float64 `form:"rate" binding:"required,gte=0,lte=10"`

	PhysicalDisabilityAccessible *bool `form:"physical_disability_accessible" binding:"required"`
}

// --------- Handlers ---------

func (h *EntertainmentHandler) Upload(c *gin.Context) {
	var req UploadEntertainmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	var count int64
	h.db.Model(&models.Entertainment{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.ValidationFailed(c, validation.Taken("name"))
		return
	}

	imageRef, ok := storeUpload(c, h.blobs, "entertainments", true, true)
	if !ok {
		return
	}

	venue := models.Entertainment{
		Name:                         req.Name,
		Category:                     req.Category,
		Location:                     req.Location,
		Description:                  req.Description,
		Rate:                         *req.Rate,
		PhysicalDisabilityAccessible: *req.PhysicalDisabilityAccessible,
		Image:                        imageRef,
	}

	if err := h.db.Create(&venue).Error; err != nil {
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
		Action:   "entertainment_added",
		Entity:   "entertainment",
		EntityID: &venue.ID,
	})

	httpresp.Created(c, "Entertainment venue created successfully", venue)
}

// GetByKey serves both lookups sharing the /entertainment/:key segment:
// a numeric key is an id, anything else is a category.
func (h *EntertainmentHandler) GetByKey(c *gin.Context) {
	key := c.Param("key")

	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		h.getByID(c, uint(id))
		return
	}

	var venues []models.Entertainment
	if err := h.db.
		Where("category = ?", key).
		Order("id ASC").
		Find(&venues).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", venues)
}

func (h *EntertainmentHandler) getByID(c *gin.Context, id uint) {
	var venue models.Entertainment
	if err := h.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Entertainment venue not found")
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", venue)
}

func (h *EntertainmentHandler) Search(c *gin.Context) {
	like := "%" + c.Param("name") + "%"

	var venues []models.Entertainment
	if err := h.db.
		Where("name LIKE ?", like).
		Order("id ASC").
		Find(&venues).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", venues)
}
