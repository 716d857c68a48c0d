package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the response shape shared by every endpoint:
// {status, message?, data?, errors?, token?}.
type Envelope struct {
	Status  bool                `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Token   string              `json:"token,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

func OKWithToken(c *gin.Context, message, token string) {
	c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Token: token})
}

func CreatedWithToken(c *gin.Context, message, token string) {
	c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Token: token})
}
