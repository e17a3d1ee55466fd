package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidDocument):
		logger.Warn("Validation error: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found: "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotConfirmed):
		logger.Info("Not confirmed: " + action)
		c.JSON(http.StatusConflict, gin.H{"error": "Confirmation required: repeat the request with confirm=true"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// confirmerFromQuery approves destructive operations only when ?confirm=true is given.
func confirmerFromQuery(c *gin.Context) portssvc.Confirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return portssvc.Confirmed(ok)
}
