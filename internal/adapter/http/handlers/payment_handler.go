package handlers

import (
	"errors"
	"net/http"

	"caza_backend/internal/adapter/http/dto/request"
	"caza_backend/internal/adapter/http/dto/response"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"
	"caza_backend/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PaymentHandler receives provider notifications and manual backfills.
type PaymentHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewPaymentHandler(uc usecase.IReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Webhook godoc
// @Summary Payment provider notification
// @Description Accepts topic/type and id/data.id as query parameters or JSON body. Always acknowledged.
// @Tags payments
// @Produce json
// @Success 200 {object} response.WebhookResponse
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	topic := firstNonEmpty(c.Query("topic"), c.Query("type"))
	paymentID := firstNonEmpty(c.Query("data.id"), c.Query("id"))
	if topic == "" || paymentID == "" {
		raw, err := c.GetRawData()
		if err != nil {
			log.Printf("[payment][handler] webhook body unreadable err=%v", err)
		}
		body := request.ParseWebhookBody(raw)
		topic = firstNonEmpty(topic, body.ResolveTopic())
		paymentID = firstNonEmpty(paymentID, body.ResolvePaymentID())
	}

	outcome := h.usecase.IngestNotification(c.Request.Context(), topic, paymentID)
	log.Printf("[payment][handler] webhook topic=%q payment_id=%q outcome=%s", topic, paymentID, outcome)
	c.JSON(http.StatusOK, response.WebhookResponse{Status: "notification received", Outcome: string(outcome)})
}

// Backfill godoc
// @Summary Fetch a payment from the provider and store it
// @Tags payments
// @Produce json
// @Param payment_id path string true "Provider payment id"
// @Success 200 {object} response.BackfillResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /payments/{payment_id}/backfill [post]
func (h *PaymentHandler) Backfill(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] backfill start payment_id=%s", paymentID)

	rec, err := h.usecase.FetchAndStore(c.Request.Context(), paymentID)
	if errors.Is(err, usecase.ErrPaymentAlreadyExists) {
		c.JSON(http.StatusOK, response.FromBackfill(response.BackfillAlreadyExists, rec))
		return
	}
	if err != nil {
		log.Printf("[payment][handler] backfill failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapReconciliationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBackfill(response.BackfillStored, rec))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPaymentNotFoundAtProvider):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found at provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnclassifiedPayment):
		return pkg.NewDomainErrorSimple("UNCLASSIFIED_PAYMENT", "Payment reference does not match a known entity kind", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	}
	if appErr, ok := mapUpstreamError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrPaymentLookupFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider lookup failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrLedgerWriteFailed):
		return pkg.NewDomainError("LEDGER_WRITE_FAILED", "Payment could not be stored", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
