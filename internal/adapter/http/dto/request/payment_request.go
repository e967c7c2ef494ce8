package request

import "strings"

// VerifyPaymentRequest carries what the checkout widget returns after payment.
// The gateway's own razorpay_* names are accepted as well.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r VerifyPaymentRequest) ResolveOrderID() string {
	return firstNonEmpty(r.OrderID, r.RazorpayOrderID)
}

func (r VerifyPaymentRequest) ResolvePaymentID() string {
	return firstNonEmpty(r.PaymentID, r.RazorpayPaymentID)
}

func (r VerifyPaymentRequest) ResolveSignature() string {
	return firstNonEmpty(r.Signature, r.RazorpaySignature)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
