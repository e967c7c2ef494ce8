package domain

import "errors"

// Error taxonomy shared by every layer. Callers wrap these with context using
// fmt.Errorf("%w: ...") and match them with errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConfiguration   = errors.New("configuration error")
	ErrValidation      = errors.New("validation error")

	ErrUploadURLCreation = errors.New("upload url creation failed")
	ErrStorageWrite      = errors.New("storage write failed")

	ErrGatewayOrder       = errors.New("payment gateway order error")
	ErrGatewayFetch       = errors.New("payment gateway fetch error")
	ErrSignatureMismatch  = errors.New("payment signature mismatch")
	ErrPaymentNotCaptured = errors.New("payment not captured")

	ErrCustomizationNotFound = errors.New("customization not found")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrPaymentOrderNotFound  = errors.New("payment order not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrConcurrentUpdate      = errors.New("concurrent update conflict")
)
