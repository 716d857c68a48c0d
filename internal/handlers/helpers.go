package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahhal-app/tourism-api/internal/blob"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/middleware"
	"github.com/rahhal-app/tourism-api/internal/models"
	"github.com/rahhal-app/tourism-api/internal/validation"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// currentUser loads the authenticated user set by the auth middleware.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "User not authenticated")
		return nil, false
	}

	var user models.User
	if err := db.First(&user, userIDVal.(uint)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "User not authenticated")
		} else {
			httperr.Internal(c, err)
		}
		return nil, false
	}

	return &user, true
}

// storeUpload reads the multipart "image" field and hands it to the blob
// store. It writes the error response itself and reports success; an
// optional missing image yields ("", true).
func storeUpload(c *gin.Context, blobs *blob.Service, dir string, allowSVG, required bool) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		if !required && (errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)) {
			return "", true
		}
		httperr.BadRequest(c, "No image uploaded")
		return "", false
	}

	ref, err := blobs.Store(c.Request.Context(), fh, dir, allowSVG)
	switch {
	case err == nil:
		return ref, true
	case errors.Is(err, blob.ErrUnsupportedType):
		httperr.ValidationFailed(c, validation.Single("image",
			"The image must be a file of type: jpeg, png, jpg, gif."))
	case errors.Is(err, blob.ErrTooLarge):
		httperr.ValidationFailed(c, validation.Single("image",
			"The image exceeds the maximum allowed size."))
	default:
		httperr.Internal(c, err)
	}
	return "", false
}
