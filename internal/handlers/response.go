package handlers

import (
	"errors"
	"net/http"
	"os"

	"mangan/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// respondOK wraps data in the success envelope every endpoint returns.
func respondOK(c *gin.Context, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// respondError maps a service error to a status code and the failure envelope.
// Domain precondition errors surface their message verbatim; everything else
// is logged and reported as a generic failure.
func respondError(c *gin.Context, err error) {
	var stale *services.StalePackagesError
	var price *services.PriceMismatchError
	var transition *services.InvalidTransitionError

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.As(err, &stale), errors.As(err, &price):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &transition):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrNotOrderOwner):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, gorm.ErrRecordNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDeliveryExists),
		errors.Is(err, services.ErrOrderProcessed),
		errors.Is(err, services.ErrOrderFinal),
		errors.Is(err, services.ErrProofAlreadySet),
		errors.Is(err, services.ErrProofRequired):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrNotCourier),
		errors.Is(err, services.ErrInvalidPackageKind):
		status, message = http.StatusBadRequest, err.Error()
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}
