// Package handlers contains HTTP request handlers for the catalog service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/service"
)

// RespondError writes a JSON error body with a human-readable message.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// RespondServiceError maps a service error onto the HTTP surface. Unexpected
// failures are logged with their cause and reported generically; everything
// in the service taxonomy carries its own message.
func RespondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		RespondError(c, status, "a server error has occurred")
		return
	}
	RespondError(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidItemID),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthRequired),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSessionUserGone):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
