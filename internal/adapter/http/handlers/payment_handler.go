package handlers

import (
	"net/http"
	"strings"

	request "invite_studio/internal/adapter/http/dto/request"
	response "invite_studio/internal/adapter/http/dto/response"
	"invite_studio/internal/adapter/http/middleware"
	"invite_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	WebhookSignatureHeader = "X-Razorpay-Signature"
	maxWebhookBytes        = 1 << 20
)

// PaymentHandler handles checkout, verification and the gateway webhook.
type PaymentHandler struct {
	usecase usecase.IPaymentOrderUseCase
	keyID   string
	log     *zap.Logger
}

// NewPaymentHandler builds the handler. keyID is the public gateway key the
// checkout widget needs; it is empty outside real mode.
func NewPaymentHandler(uc usecase.IPaymentOrderUseCase, keyID string, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, keyID: keyID, log: log}
}

// Checkout godoc
// @Summary  Create or reuse the payment order for a project
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Project id"
// @Success  200  {object}  response.CheckoutResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/projects/{id}/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.Checkout(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		requestLog(c, h.log).Warn("[payment][handler] checkout failed", zap.String("customization_id", id), zap.Error(err))
		writeError(c, err)
		return
	}
	keyID := h.keyID
	if order.Mock {
		keyID = ""
	}
	c.JSON(http.StatusOK, response.FromPaymentOrder(order, keyID))
}

// Verify godoc
// @Summary  Verify a completed checkout
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.VerifyPaymentRequest  true  "Checkout result"
// @Success  200   {object}  response.VerifyPaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	orderID := payload.ResolveOrderID()
	confirmation, err := h.usecase.Verify(c.Request.Context(), middleware.UserID(c), orderID, payload.ResolvePaymentID(), payload.ResolveSignature())
	if err != nil {
		requestLog(c, h.log).Warn("[payment][handler] verify failed", zap.String("order_id", orderID), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentConfirmation(confirmation))
}

// Webhook godoc
// @Summary  Gateway webhook
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Razorpay-Signature  header  string  true  "HMAC of the raw body"
// @Success  200
// @Failure  400  {object}  pkg.HTTPError
// @Router   /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	signature := strings.TrimSpace(c.GetHeader(WebhookSignatureHeader))
	if signature == "" {
		writeAppError(c, errMissingSignature)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
	body, err := c.GetRawData()
	if err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		requestLog(c, h.log).Warn("[payment][handler] webhook failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPayment godoc
// @Summary  Fetch a payment's status from the gateway
// @Tags     payments
// @Produce  json
// @Param    paymentId  path      string  true  "Gateway payment id"
// @Success  200        {object}  response.PaymentDetailsResponse
// @Failure  404        {object}  pkg.HTTPError
// @Failure  502        {object}  pkg.HTTPError
// @Security Bearer
// @Router   /api/payments/{paymentId} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	details, err := h.usecase.FetchPayment(c.Request.Context(), middleware.UserID(c), c.Param("paymentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentDetails(details))
}
