package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/rahhal-app/tourism-api/internal/domain/reservation"
	"github.com/rahhal-app/tourism-api/internal/dto"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/httpresp"
)

type ReservationHandler struct {
	repo domain.Repository
}

func NewReservationHandler(repo domain.Repository) *ReservationHandler {
	return &ReservationHandler{repo: repo}
}

// List returns every hotel and car reservation. Not scoped to the
// caller, matching the original product behavior.
func (h *ReservationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	hotels, err := h.repo.ListHotelReservations(ctx)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	cars, err := h.repo.ListCarReservations(ctx)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", dto.ReservationListDTO{
		Hotels: hotels,
		Cars:   cars,
	})
}
