package httpHandler

import (
	"errors"
	"net/http"

	"rental-api/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps domain errors onto status codes. Unexpected errors are
// logged and answered with a generic message.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, entities.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
	case errors.Is(err, entities.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFound})
	case errors.Is(err, entities.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": "Email already registered"})
	default:
		_ = c.Error(err)
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"detail":  "Invalid request body",
		"details": err.Error(),
	})
}
