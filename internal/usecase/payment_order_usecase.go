package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/infrastructure/metrics"
	"invite_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	webhookPaymentCaptured = "payment.captured"
	webhookOrderPaid       = "order.paid"
	webhookPaymentFailed   = "payment.failed"
)

// IPaymentOrderUseCase drives checkout: order creation, payment verification
// and the gateway webhook.
//
// Ordering rules:
//   - the gateway order is created before it is recorded in the ledger
//   - a customization becomes paid only after the signature verifies AND the
//     gateway reports the payment as captured for the same order
type IPaymentOrderUseCase interface {
	Checkout(ctx context.Context, userID, customizationID string) (entities.PaymentOrder, error)
	Verify(ctx context.Context, userID, orderID, paymentID, signature string) (entities.PaymentConfirmation, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	FetchPayment(ctx context.Context, userID, paymentID string) (entities.PaymentDetails, error)
}

type PaymentOrderUseCase struct {
	orders         interfaces.IPaymentOrderRepository
	customizations interfaces.ICustomizationRepository
	gateway        interfaces.IPaymentGateway
	metrics        *metrics.Metrics
	log            *zap.Logger
	now            func() time.Time
}

var _ IPaymentOrderUseCase = (*PaymentOrderUseCase)(nil)

func NewPaymentOrderUseCase(
	orders interfaces.IPaymentOrderRepository,
	customizations interfaces.ICustomizationRepository,
	gateway interfaces.IPaymentGateway,
	m *metrics.Metrics,
	log *zap.Logger,
) *PaymentOrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentOrderUseCase{
		orders:         orders,
		customizations: customizations,
		gateway:        gateway,
		metrics:        m,
		log:            log,
		now:            time.Now,
	}
}

func (u *PaymentOrderUseCase) Checkout(ctx context.Context, userID, customizationID string) (entities.PaymentOrder, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.PaymentOrder{}, domain.ErrUnauthenticated
	}
	customizationID = strings.TrimSpace(customizationID)
	u.log.Info("[payment][usecase] checkout start", zap.String("customization_id", customizationID))

	c, err := u.customizations.GetByID(ctx, customizationID)
	if err != nil {
		u.log.Error("[payment][usecase] load customization failed", zap.String("customization_id", customizationID), zap.Error(err))
		return entities.PaymentOrder{}, err
	}
	if !c.OwnedBy(userID) {
		return entities.PaymentOrder{}, domain.ErrCustomizationNotFound
	}
	if c.Status != entities.CustomizationStatusPreviewRequested {
		u.log.Warn("[payment][usecase] checkout in wrong status", zap.String("customization_id", c.ID), zap.String("status", string(c.Status)))
		return entities.PaymentOrder{}, fmt.Errorf("%w: checkout requires status %s, got %s", domain.ErrInvalidTransition, entities.CustomizationStatusPreviewRequested, c.Status)
	}

	existing, err := u.orders.ListByCustomizationID(ctx, c.ID)
	if err != nil {
		u.log.Error("[payment][usecase] list orders failed", zap.String("customization_id", c.ID), zap.Error(err))
		return entities.PaymentOrder{}, err
	}
	mock := u.gateway.Mode() == "mock"
	for _, o := range existing {
		if o.Status == entities.PaymentOrderStatusCreated && o.Mock == mock {
			u.log.Info("[payment][usecase] checkout reuses open order", zap.String("customization_id", c.ID), zap.String("order_id", o.ID))
			return o, nil
		}
	}

	order, err := u.gateway.CreateOrder(ctx, c.Amount, c.Currency, c.ID)
	if err != nil {
		u.log.Error("[payment][usecase] gateway create order failed", zap.String("customization_id", c.ID), zap.Error(err))
		return entities.PaymentOrder{}, err
	}
	u.metrics.OrderCreated(u.gateway.Mode())

	saved, err := u.orders.Create(ctx, order)
	if err != nil {
		// The gateway order exists but is unrecorded; it expires unpaid.
		u.log.Error("[payment][usecase] persist order failed", zap.String("customization_id", c.ID), zap.String("order_id", order.ID), zap.Error(err))
		return entities.PaymentOrder{}, err
	}
	u.log.Info("[payment][usecase] checkout success", zap.String("customization_id", c.ID), zap.String("order_id", saved.ID), zap.Int64("amount_minor", saved.AmountMinor), zap.Bool("mock", saved.Mock))
	return saved, nil
}

func (u *PaymentOrderUseCase) Verify(ctx context.Context, userID, orderID, paymentID, signature string) (entities.PaymentConfirmation, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.PaymentConfirmation{}, domain.ErrUnauthenticated
	}
	orderID = strings.TrimSpace(orderID)
	paymentID = strings.TrimSpace(paymentID)
	signature = strings.TrimSpace(signature)
	if orderID == "" || paymentID == "" || signature == "" {
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: orderId, paymentId and signature are required", domain.ErrValidation)
	}
	u.log.Info("[payment][usecase] verify start", zap.String("order_id", orderID), zap.String("payment_id", paymentID))

	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentConfirmation{}, err
	}
	c, err := u.customizations.GetByID(ctx, order.CustomizationID)
	if err != nil {
		return entities.PaymentConfirmation{}, err
	}
	if !c.OwnedBy(userID) {
		return entities.PaymentConfirmation{}, domain.ErrPaymentOrderNotFound
	}

	if !u.gateway.VerifySignature(orderID, paymentID, signature) {
		u.metrics.Verification("signature_mismatch")
		u.log.Warn("[payment][usecase] signature mismatch", zap.String("order_id", orderID), zap.String("payment_id", paymentID))
		return entities.PaymentConfirmation{}, domain.ErrSignatureMismatch
	}
	return u.confirm(ctx, order, c, paymentID)
}

// HandleWebhook processes a signed gateway event. Events for unknown orders
// and unhandled event types are acknowledged without effect.
func (u *PaymentOrderUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !u.gateway.VerifyWebhookSignature(body, strings.TrimSpace(signature)) {
		u.metrics.Verification("webhook_signature_mismatch")
		u.log.Warn("[payment][usecase] webhook signature mismatch", zap.Int("body_len", len(body)))
		return domain.ErrSignatureMismatch
	}

	var ev webhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: webhook body is not valid JSON", domain.ErrValidation)
	}
	orderID := ev.Payload.Payment.Entity.OrderID
	if orderID == "" {
		orderID = ev.Payload.Order.Entity.ID
	}
	paymentID := ev.Payload.Payment.Entity.ID
	u.log.Info("[payment][usecase] webhook received", zap.String("event", ev.Event), zap.String("order_id", orderID), zap.String("payment_id", paymentID))

	switch ev.Event {
	case webhookPaymentCaptured, webhookOrderPaid, webhookPaymentFailed:
	default:
		return nil
	}
	if orderID == "" {
		return nil
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		u.log.Warn("[payment][usecase] webhook for unknown order", zap.String("order_id", orderID))
		return nil
	}

	if ev.Event == webhookPaymentFailed {
		ok, err := u.orders.MarkFailed(ctx, order.ID, paymentID)
		if err != nil {
			return err
		}
		u.log.Info("[payment][usecase] order marked failed", zap.String("order_id", order.ID), zap.Bool("changed", ok))
		return nil
	}

	if paymentID == "" {
		return nil
	}
	c, err := u.customizations.GetByID(ctx, order.CustomizationID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		u.log.Error("[payment][usecase] order references missing customization", zap.String("order_id", order.ID), zap.String("customization_id", order.CustomizationID))
		return nil
	}
	_, err = u.confirm(ctx, order, c, paymentID)
	return err
}

// FetchPayment returns the gateway's view of a payment the caller paid for.
// A payment that does not resolve to one of the caller's orders, including
// one the gateway reports without an order id, is reported as not found.
func (u *PaymentOrderUseCase) FetchPayment(ctx context.Context, userID, paymentID string) (entities.PaymentDetails, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.PaymentDetails{}, domain.ErrUnauthenticated
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentDetails{}, fmt.Errorf("%w: payment id is required", domain.ErrValidation)
	}
	details, err := u.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		u.log.Error("[payment][usecase] fetch payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.PaymentDetails{}, err
	}

	orderID := strings.TrimSpace(details.OrderID)
	if orderID == "" {
		u.log.Warn("[payment][usecase] payment without order", zap.String("payment_id", paymentID))
		return entities.PaymentDetails{}, domain.ErrPaymentOrderNotFound
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentDetails{}, err
	}
	c, err := u.customizations.GetByID(ctx, order.CustomizationID)
	if err != nil {
		return entities.PaymentDetails{}, err
	}
	if !c.OwnedBy(userID) {
		u.log.Warn("[payment][usecase] payment lookup by non-owner", zap.String("payment_id", paymentID), zap.String("user_id", userID))
		return entities.PaymentDetails{}, domain.ErrPaymentOrderNotFound
	}
	return details, nil
}

// confirm corroborates the payment with the gateway, settles the ledger and
// then advances the customization. Repeating it for a paid order only repairs
// a customization left behind.
func (u *PaymentOrderUseCase) confirm(ctx context.Context, order entities.PaymentOrder, c entities.Customization, paymentID string) (entities.PaymentConfirmation, error) {
	if order.Status == entities.PaymentOrderStatusPaid {
		c, err := u.markCustomizationPaid(ctx, c)
		if err != nil {
			return entities.PaymentConfirmation{}, err
		}
		u.metrics.Verification("already_paid")
		return entities.PaymentConfirmation{Order: order, Customization: c, AlreadyPaid: true}, nil
	}

	details, err := u.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		u.metrics.Verification("fetch_failed")
		u.log.Error("[payment][usecase] fetch payment failed", zap.String("order_id", order.ID), zap.String("payment_id", paymentID), zap.Error(err))
		return entities.PaymentConfirmation{}, err
	}
	if err := matchCapture(order, details); err != nil {
		u.metrics.Verification("not_captured")
		u.log.Warn("[payment][usecase] payment not captured", zap.String("order_id", order.ID), zap.String("payment_id", paymentID), zap.String("status", string(details.Status)))
		return entities.PaymentConfirmation{}, err
	}

	ok, err := u.orders.MarkPaid(ctx, order.ID, paymentID)
	if err != nil {
		u.log.Error("[payment][usecase] mark order paid failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.PaymentConfirmation{}, err
	}
	alreadyPaid := false
	if !ok {
		reloaded, err := u.loadOrder(ctx, order.ID)
		if err != nil {
			return entities.PaymentConfirmation{}, err
		}
		if reloaded.Status != entities.PaymentOrderStatusPaid {
			return entities.PaymentConfirmation{}, fmt.Errorf("%w: order %s is %s", domain.ErrInvalidTransition, order.ID, reloaded.Status)
		}
		order = reloaded
		alreadyPaid = true
	} else {
		order.Status = entities.PaymentOrderStatusPaid
		order.GatewayPaymentID = paymentID
		order.UpdatedAt = u.now().UTC()
	}

	c, err = u.markCustomizationPaid(ctx, c)
	if err != nil {
		return entities.PaymentConfirmation{}, err
	}
	u.metrics.Verification("verified")
	u.log.Info("[payment][usecase] payment verified", zap.String("order_id", order.ID), zap.String("payment_id", paymentID), zap.String("customization_id", c.ID))
	return entities.PaymentConfirmation{Order: order, Customization: c, AlreadyPaid: alreadyPaid}, nil
}

func (u *PaymentOrderUseCase) markCustomizationPaid(ctx context.Context, c entities.Customization) (entities.Customization, error) {
	if c.Status == entities.CustomizationStatusPaid {
		return c, nil
	}
	advanced, err := advance(ctx, u.customizations, u.log, c, entities.CustomizationStatusPaid, u.now)
	if err == nil {
		return advanced, nil
	}
	// A concurrent confirmation may have won the race.
	reloaded, lerr := u.customizations.GetByID(ctx, c.ID)
	if lerr == nil && reloaded.Status == entities.CustomizationStatusPaid {
		return reloaded, nil
	}
	u.log.Error("[payment][usecase] customization not advanced after payment", zap.String("customization_id", c.ID), zap.String("status", string(c.Status)), zap.Error(err))
	return entities.Customization{}, err
}

func (u *PaymentOrderUseCase) loadOrder(ctx context.Context, orderID string) (entities.PaymentOrder, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		u.log.Error("[payment][usecase] load order failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.PaymentOrder{}, err
	}
	if order.ID == "" {
		return entities.PaymentOrder{}, domain.ErrPaymentOrderNotFound
	}
	return order, nil
}

// matchCapture checks the fetched payment against the order. Mock details
// carry no order id or amount and are accepted on status alone.
func matchCapture(order entities.PaymentOrder, d entities.PaymentDetails) error {
	if !d.Captured() {
		return fmt.Errorf("%w: status %q", domain.ErrPaymentNotCaptured, d.Status)
	}
	if d.OrderID != "" && d.OrderID != order.ID {
		return fmt.Errorf("%w: payment belongs to order %s", domain.ErrPaymentNotCaptured, d.OrderID)
	}
	if d.AmountMinor != 0 && d.AmountMinor != order.AmountMinor {
		return fmt.Errorf("%w: captured %d, expected %d", domain.ErrPaymentNotCaptured, d.AmountMinor, order.AmountMinor)
	}
	return nil
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}
