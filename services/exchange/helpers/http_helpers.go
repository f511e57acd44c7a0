package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"sole-exchange/internal/exchangeerrors"
	"sole-exchange/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, exchangeerrors.ErrMarketNotFound):
		return http.StatusNotFound, "product or size variant not found"
	case errors.Is(err, exchangeerrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, exchangeerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, exchangeerrors.ErrInvalidOffer):
		return http.StatusBadRequest, "invalid offer details"
	case errors.Is(err, exchangeerrors.ErrDuplicateOffer):
		return http.StatusConflict, "an open offer already exists for this user, product and size"
	case errors.Is(err, exchangeerrors.ErrStatusConflict):
		return http.StatusConflict, "conflicting status change"
	case errors.Is(err, exchangeerrors.ErrSettlementFailed):
		return http.StatusBadGateway, "settlement failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
