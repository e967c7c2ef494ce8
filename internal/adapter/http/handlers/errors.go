package handlers

import (
	"errors"
	"net/http"

	"invite_studio/internal/domain"
	"invite_studio/internal/infrastructure/logger"
	"invite_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "The request body is missing required fields", http.StatusBadRequest)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in and retry", http.StatusUnauthorized)
	errMissingSignature = pkg.NewDomainErrorSimple("PAYMENT_SIGNATURE_MISMATCH", "Missing webhook signature", http.StatusBadRequest)
)

// mapError turns a domain error into the client-facing AppError. Messages are
// actionable and never carry transport details.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, domain.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrCustomizationNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrPaymentOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_NOT_FOUND", "Payment order not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "This action is not available for the project in its current state", err, http.StatusConflict)
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "The project was changed at the same time, please retry", err, http.StatusConflict)
	case errors.Is(err, domain.ErrUploadURLCreation):
		return pkg.NewDomainError("UPLOAD_URL_CREATION_FAILED", "Could not prepare the upload, please retry", err, http.StatusBadGateway)
	case errors.Is(err, domain.ErrStorageWrite):
		return pkg.NewDomainError("STORAGE_WRITE_FAILED", "Upload failed, please retry", err, http.StatusBadGateway)
	case errors.Is(err, domain.ErrSignatureMismatch):
		return pkg.NewDomainError("PAYMENT_SIGNATURE_MISMATCH", "Payment could not be verified. If you were charged, contact support", err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrPaymentNotCaptured):
		return pkg.NewDomainError("PAYMENT_NOT_CAPTURED", "Payment is not complete yet, please retry in a moment", err, http.StatusConflict)
	case errors.Is(err, domain.ErrGatewayOrder):
		return pkg.NewDomainError("PAYMENT_ORDER_FAILED", "Could not start the payment, please retry", err, http.StatusBadGateway)
	case errors.Is(err, domain.ErrGatewayFetch):
		return pkg.NewDomainError("PAYMENT_STATUS_UNAVAILABLE", "Payment status is unavailable, please retry", err, http.StatusBadGateway)
	case errors.Is(err, domain.ErrConfiguration):
		return pkg.NewDomainError("SERVICE_NOT_CONFIGURED", "This feature is not available right now", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please retry", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func requestLog(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	return logger.FromContext(c.Request.Context(), fallback)
}
