package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahhal-app/tourism-api/internal/auth"
	"github.com/rahhal-app/tourism-api/internal/httperr"
	"github.com/rahhal-app/tourism-api/internal/httpresp"
)

const (
	ContextUserID   = "userID"
	ContextTokenJTI = "tokenJTI"
)

func AuthMiddleware(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Invalid authorization header")
			return
		}

		userID, jti, err := tokens.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			// A session store outage is not the caller's fault.
			if !errors.Is(err, auth.ErrUnauthenticated) {
				httperr.Internal(c, err)
				c.Abort()
				return
			}
			abortUnauthorized(c, "Invalid or revoked token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextTokenJTI, jti)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpresp.Envelope{
		Status:  false,
		Message: message,
	})
}
