package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Created sends 201 with the given message and extra fields.
func Created(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusCreated, Resp{Success: true, Message: message, Extra: extra}.Body())
}

// BadRequest sends 400 with a failure message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Message: message}.Body())
}

// Unauthorized sends 401 with a failure message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Resp{Success: false, Message: message}.Body())
}

// Forbidden sends 403 with a failure message.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Resp{Success: false, Message: message}.Body())
}

// NotFound sends 404 with a failure message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{Success: false, Message: message}.Body())
}

// TooManyRequests sends 429 with a failure message.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Resp{Success: false, Message: message}.Body())
}

// InternalError sends 500 with a failure message.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Message: message}.Body())
}
