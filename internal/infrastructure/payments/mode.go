package payments

import (
	"fmt"
	"strings"

	"invite_studio/internal/domain"
	"invite_studio/internal/infrastructure/config"
)

// GatewayMode is selected once at startup and never changes for the life of
// the process. Exactly one of RealMode, MockMode or DisabledMode.
type GatewayMode interface {
	Name() string
	isGatewayMode()
}

type RealMode struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

type MockMode struct{}

// DisabledMode rejects order creation and fails every verification.
type DisabledMode struct {
	Reason string
}

func (RealMode) Name() string     { return "real" }
func (MockMode) Name() string     { return "mock" }
func (DisabledMode) Name() string { return "disabled" }

func (RealMode) isGatewayMode()     {}
func (MockMode) isGatewayMode()     {}
func (DisabledMode) isGatewayMode() {}

// SelectGatewayMode picks the gateway mode from configuration.
//
// Mock requires the explicit PAYMENT_GATEWAY_MOCK opt-in and a non-production
// environment; asking for it in production is a configuration error. Real keys
// win over the mock flag.
func SelectGatewayMode(cfg config.PaymentConfig, production bool) (GatewayMode, error) {
	keyID := strings.TrimSpace(cfg.KeyID)
	keySecret := strings.TrimSpace(cfg.KeySecret)

	if cfg.Mock && production {
		return nil, fmt.Errorf("%w: payment gateway mock mode is not allowed in production", domain.ErrConfiguration)
	}
	if keyID != "" && keySecret != "" {
		return RealMode{
			KeyID:         keyID,
			KeySecret:     keySecret,
			WebhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		}, nil
	}
	if cfg.Mock {
		return MockMode{}, nil
	}
	return DisabledMode{Reason: "RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are not set"}, nil
}
