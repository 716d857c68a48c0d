package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rahhal-app/tourism-api/internal/audit"
	"github.com/rahhal-app/tourism-api/internal/auth"
	"github.com/rahhal-app/tourism-api/internal/blob"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/httpresp"
	"github.com/rahhal-app/tourism-api/internal/middleware"
	"github.com/rahhal-app/tourism-api/internal/models"
	"github.com/rahhal-app/tourism-api/internal/validation"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.Service
	blobs  *blob.Service
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, tokens *auth.Service, blobs *blob.Service, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, blobs: blobs, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name                 string `form:"name" binding:"required,max=255"`
	Email                string `form:"email" binding:"required,email,max=255"`
	Password             string `form:"password" binding:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" binding:"required,eqfield=Password"`
	PhoneNumber          string `form:"phone_number" binding:"required,max=255"`
	AccountType          string `form:"account_type" binding:"required,oneof=hearing_disability physical_disability normal tour_guide"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name                 *string `form:"name" binding:"omitempty,max=255"`
	Email                *string `form:"email" binding:"omitempty,email,max=255"`
	Password             *string `form:"password" binding:"omitempty,min=8"`
	PasswordConfirmation *string `form:"password_confirmation"`
	PhoneNumber          *string `form:"phone_number" binding:"omitempty,max=255"`
	AccountType          *string `form:"account_type" binding:"omitempty,oneof=hearing_disability physical_disability normal tour_guide"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.ValidationFailed(c, validation.Taken("email"))
		return
	}

	// Registration requires a profile image.
	imageRef, ok := storeUpload(c, h.blobs, "users", false, true)
	if !ok {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
		AccountType:  req.AccountType,
		Image:        imageRef,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The blob is already on disk; don't orphan it.
		h.blobs.Remove(c.Request.Context(), imageRef)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the uniqueness race to a concurrent registration.
			httperr.ValidationFailed(c, validation.Taken("email"))
			return
		}
		httperr.Internal(c, err)
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.CreatedWithToken(c, "User created successfully", token)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Email & Password does not match with our record.")
			return
		}
		httperr.Internal(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Email & Password does not match with our record.")
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OKWithToken(c, "User Logged In Successfully", token)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.MustGet(middleware.ContextTokenJTI).(string)

	if err := h.tokens.Revoke(c.Request.Context(), jti); err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "User logged out successfully", nil)
}

// Update applies a partial update: every field is optional, type-checked
// when present, and a no-op when omitted.
func (h *AuthHandler) Update(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.ValidationFailed(c, validation.FieldErrors(req, err))
		return
	}

	if req.Password != nil {
		if req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password {
			httperr.ValidationFailed(c, validation.Single("password_confirmation",
				"The password confirmation does not match."))
			return
		}
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.ValidationFailed(c, validation.Taken("email"))
			return
		}
		user.Email = email
	}

	imageRef, ok := storeUpload(c, h.blobs, "users", false, false)
	if !ok {
		return
	}
	if imageRef != "" {
		user.Image = imageRef
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, err)
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.AccountType != nil {
		user.AccountType = *req.AccountType
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, "User updated successfully", user)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, "", users)
}
