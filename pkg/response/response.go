package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope shared by every error response.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Error sends an error response with the standard envelope.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:   true,
		Message: message,
	})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response carrying the underlying
// failure text, prefixed the same way for every endpoint.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "An error occurred: "+err.Error())
}

// Success sends a 200 response with the given body.
func Success(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with the given body.
func Created(c *gin.Context, body gin.H) {
	c.JSON(http.StatusCreated, body)
}
