package handlers

import (
	"github.com/gin-gonic/gin"

	"converter-service/internal/models"
)

// RespondWithError sends a standardized JSON error response using the
// models.APIError envelope, so every failure carries an application-specific
// code alongside the human-readable message.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	errResp := models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	}
	c.JSON(httpStatus, errResp)
}

// RespondWithSuccess sends a standardized JSON success response, or only the
// status code when there is no body to send.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}
