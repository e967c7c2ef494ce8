package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// Checkout uses it to open an order for a customization; verification uses it
// to check the client-supplied signature and corroborate the payment status.
type IPaymentGateway interface {
	Mode() string
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (entities.PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
	FetchPayment(ctx context.Context, paymentID string) (entities.PaymentDetails, error)
}
