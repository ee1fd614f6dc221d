package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// writeError maps service errors onto HTTP statuses. Anything unrecognised
// is attached to the context for ErrorHandler and answered with a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyBooked),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, store.ErrEmailInUse):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case errors.Is(err, services.ErrNotConfirmed):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(err.Error()))
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, models.ErrInvalid):
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails("invalid request", err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails("invalid request payload", err.Error()))
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse(what+" not found"))
}
