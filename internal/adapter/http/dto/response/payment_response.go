package response

import (
	"invite_studio/internal/domain/entities"
)

// CheckoutResponse is what the client needs to open the checkout widget.
type CheckoutResponse struct {
	OrderID   string `json:"orderId"`
	ProjectID string `json:"projectId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	KeyID     string `json:"keyId,omitempty"`
	Mock      bool   `json:"mock"`
}

func FromPaymentOrder(o entities.PaymentOrder, keyID string) CheckoutResponse {
	return CheckoutResponse{
		OrderID:   o.ID,
		ProjectID: o.CustomizationID,
		Amount:    o.AmountMinor,
		Currency:  o.Currency,
		Status:    string(o.Status),
		KeyID:     keyID,
		Mock:      o.Mock,
	}
}

type VerifyPaymentResponse struct {
	Verified      bool   `json:"verified"`
	OrderID       string `json:"orderId"`
	PaymentID     string `json:"paymentId"`
	ProjectID     string `json:"projectId"`
	ProjectStatus string `json:"projectStatus"`
	AlreadyPaid   bool   `json:"alreadyPaid"`
}

func FromPaymentConfirmation(c entities.PaymentConfirmation) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Verified:      true,
		OrderID:       c.Order.ID,
		PaymentID:     c.Order.GatewayPaymentID,
		ProjectID:     c.Customization.ID,
		ProjectStatus: string(c.Customization.Status),
		AlreadyPaid:   c.AlreadyPaid,
	}
}

type PaymentDetailsResponse struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Method    string `json:"method,omitempty"`
	Mock      bool   `json:"mock"`
}

func FromPaymentDetails(d entities.PaymentDetails) PaymentDetailsResponse {
	return PaymentDetailsResponse{
		PaymentID: d.ID,
		OrderID:   d.OrderID,
		Status:    string(d.Status),
		Amount:    d.AmountMinor,
		Currency:  d.Currency,
		Method:    d.Method,
		Mock:      d.Mock,
	}
}
