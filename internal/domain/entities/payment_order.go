package entities

import (
	"encoding/json"
	"time"
)

// PaymentOrderStatus tracks a gateway order on our side.
type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated PaymentOrderStatus = "created"
	PaymentOrderStatusPaid    PaymentOrderStatus = "paid"
	PaymentOrderStatusFailed  PaymentOrderStatus = "failed"
)

// PaymentOrder is the gateway-side order tracked for one customization.
//
// Storage model (DynamoDB):
//   - PK: id (gateway order id)
//   - GSI1 (customization_id-index): customization_id
//
// AmountMinor is fixed when the order is created and never recomputed.
type PaymentOrder struct {
	ID               string             `json:"id"`
	CustomizationID  string             `json:"customization_id"`
	AmountMinor      int64              `json:"amount_minor"`
	Currency         string             `json:"currency"`
	Status           PaymentOrderStatus `json:"status"`
	GatewayPaymentID string             `json:"gateway_payment_id,omitempty"`
	Mock             bool               `json:"mock"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`

	GatewayResponseRaw json.RawMessage `json:"gateway_response_raw,omitempty"`
}

// Receipt is the reference sent to the gateway; it equals the customization id.
func (o PaymentOrder) Receipt() string {
	return o.CustomizationID
}

// PaymentStatus is the gateway's authoritative status for one payment.
type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentDetails is what the gateway reports for a payment id.
type PaymentDetails struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id,omitempty"`
	Status      PaymentStatus `json:"status"`
	AmountMinor int64         `json:"amount_minor,omitempty"`
	Currency    string        `json:"currency,omitempty"`
	Method      string        `json:"method,omitempty"`
	Mock        bool          `json:"mock"`
}

func (d PaymentDetails) Captured() bool {
	return d.Status == PaymentStatusCaptured
}

// PaymentConfirmation is the outcome of a successful verification.
type PaymentConfirmation struct {
	Order         PaymentOrder  `json:"order"`
	Customization Customization `json:"customization"`
	AlreadyPaid   bool          `json:"already_paid"`
}
