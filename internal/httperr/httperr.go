package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahhal-app/tourism-api/internal/httpresp"
)

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, httpresp.Envelope{Status: false, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func ValidationFailed(c *gin.Context, errors map[string][]string) {
	c.JSON(http.StatusBadRequest, httpresp.Envelope{
		Status:  false,
		Message: "Validation error",
		Errors:  errors,
	})
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

// Internal logs the underlying error and answers with a generic message;
// internal detail never reaches the client.
func Internal(c *gin.Context, err error) {
	if err != nil {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	Write(c, http.StatusInternalServerError, "Something went wrong")
}
