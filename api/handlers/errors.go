package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloglist/api/dto"
	"bloglist/logger"
	"bloglist/services"
)

// writeError converts a service error into the uniform {error} payload.
// Unexpected errors become an opaque 500; internals are logged, not leaked.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		logger.Log.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
