package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway creates orders, verifies checkout signatures and fetches
// payment status. Its behaviour is fixed by the GatewayMode it was built with.
type RazorpayGateway struct {
	mode     GatewayMode
	orders   orderAPI
	payments paymentAPI
	now      func() time.Time
	log      *zap.Logger
}

func NewRazorpayGateway(mode GatewayMode, log *zap.Logger) *RazorpayGateway {
	if log == nil {
		log = zap.NewNop()
	}
	g := &RazorpayGateway{mode: mode, now: time.Now, log: log}
	switch m := mode.(type) {
	case RealMode:
		client := razorpay.NewClient(m.KeyID, m.KeySecret)
		g.orders = client.Order
		g.payments = client.Payment
		log.Info("[payment][gateway] razorpay client initialized")
	case MockMode:
		log.Warn("[payment][gateway] mock mode enabled")
	case DisabledMode:
		log.Warn("[payment][gateway] gateway disabled", zap.String("reason", m.Reason))
	}
	return g
}

// Mode reports the gateway mode name for logs and metrics.
func (g *RazorpayGateway) Mode() string {
	if g == nil || g.mode == nil {
		return DisabledMode{}.Name()
	}
	return g.mode.Name()
}

// ToMinorUnits converts a major-unit amount to paise/cents, rounding half away
// from zero.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: amount must be a finite number", domain.ErrValidation)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	minor := math.Round(amount * 100)
	if minor > math.MaxInt64/2 {
		return 0, fmt.Errorf("%w: amount too large", domain.ErrValidation)
	}
	return int64(minor), nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (entities.PaymentOrder, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	now := g.now().UTC()

	switch g.mode.(type) {
	case MockMode:
		id := "order_mock_" + strconv.FormatInt(now.UnixNano(), 10)
		raw, _ := json.Marshal(map[string]any{
			"id":       id,
			"amount":   minor,
			"currency": currency,
			"receipt":  receipt,
			"status":   "created",
		})
		g.log.Info("[payment][gateway] mock create order success", zap.String("order_id", id), zap.Int64("amount_minor", minor))
		return entities.PaymentOrder{
			ID:                 id,
			CustomizationID:    receipt,
			AmountMinor:        minor,
			Currency:           currency,
			Status:             entities.PaymentOrderStatusCreated,
			Mock:               true,
			CreatedAt:          now,
			UpdatedAt:          now,
			GatewayResponseRaw: raw,
		}, nil
	case RealMode:
	default:
		g.log.Error("[payment][gateway] create order while gateway disabled", zap.String("receipt", receipt))
		return entities.PaymentOrder{}, fmt.Errorf("%w: payment gateway is not configured", domain.ErrConfiguration)
	}

	if err := ctx.Err(); err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("%w: %v", domain.ErrGatewayOrder, err)
	}
	g.log.Info("[payment][gateway] create order start", zap.String("receipt", receipt), zap.Int64("amount_minor", minor), zap.String("currency", currency))

	resp, err := g.orders.Create(map[string]interface{}{
		"amount":          minor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create order failed", zap.String("receipt", receipt), zap.Error(err))
		return entities.PaymentOrder{}, fmt.Errorf("%w: %v", domain.ErrGatewayOrder, err)
	}
	id := stringField(resp, "id")
	if id == "" {
		g.log.Error("[payment][gateway] create order response without id", zap.String("receipt", receipt))
		return entities.PaymentOrder{}, fmt.Errorf("%w: response carried no order id", domain.ErrGatewayOrder)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("%w: %v", domain.ErrGatewayOrder, err)
	}
	g.log.Info("[payment][gateway] create order success", zap.String("order_id", id))

	return entities.PaymentOrder{
		ID:                 id,
		CustomizationID:    receipt,
		AmountMinor:        minor,
		Currency:           currency,
		Status:             entities.PaymentOrderStatusCreated,
		CreatedAt:          now,
		UpdatedAt:          now,
		GatewayResponseRaw: raw,
	}, nil
}

// VerifySignature checks the checkout signature the gateway hands the client
// after payment. It never panics and reports false on any malformed input.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	switch m := g.mode.(type) {
	case MockMode:
		return true
	case RealMode:
		if orderID == "" || paymentID == "" || signature == "" {
			return false
		}
		return validHMAC([]byte(orderID+"|"+paymentID), signature, m.KeySecret)
	default:
		return false
	}
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw request body.
func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	switch m := g.mode.(type) {
	case MockMode:
		return true
	case RealMode:
		if m.WebhookSecret == "" || signature == "" {
			return false
		}
		return validHMAC(body, signature, m.WebhookSecret)
	default:
		return false
	}
}

func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (entities.PaymentDetails, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentDetails{}, fmt.Errorf("%w: payment id is required", domain.ErrValidation)
	}

	switch g.mode.(type) {
	case MockMode:
		return entities.PaymentDetails{
			ID:     paymentID,
			Status: entities.PaymentStatusCaptured,
			Method: "mock",
			Mock:   true,
		}, nil
	case RealMode:
	default:
		return entities.PaymentDetails{}, fmt.Errorf("%w: payment gateway is not configured", domain.ErrConfiguration)
	}

	if err := ctx.Err(); err != nil {
		return entities.PaymentDetails{}, fmt.Errorf("%w: %v", domain.ErrGatewayFetch, err)
	}
	resp, err := g.payments.Fetch(paymentID, nil, nil)
	if err != nil {
		g.log.Error("[payment][gateway] sdk fetch payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.PaymentDetails{}, fmt.Errorf("%w: %v", domain.ErrGatewayFetch, err)
	}

	return entities.PaymentDetails{
		ID:          defaultString(stringField(resp, "id"), paymentID),
		OrderID:     stringField(resp, "order_id"),
		Status:      entities.PaymentStatus(stringField(resp, "status")),
		AmountMinor: int64Field(resp, "amount"),
		Currency:    stringField(resp, "currency"),
		Method:      stringField(resp, "method"),
	}, nil
}

// Signature computes the hex HMAC-SHA256 the gateway would send for payload.
func Signature(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func validHMAC(payload []byte, signature, secret string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), got)
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
