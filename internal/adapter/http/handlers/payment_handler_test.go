package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"caza_backend/internal/adapter/http/handlers/mocks"
	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase"
	"caza_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIReconciliationUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReconciliationUseCase(ctrl)
	h := NewPaymentHandler(uc)
	r := gin.New()
	r.POST("/v1/payments/webhook", h.Webhook)
	r.POST("/v1/payments/:payment_id/backfill", h.Backfill)
	return r, uc
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("query parameters", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "payment", "123").Return(usecase.IngestStored)

		w := serve(r, http.MethodPost, "/v1/payments/webhook?topic=payment&id=123", nil)

		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "stored", decode(t, w)["outcome"])
	})

	t.Run("data.id query wins over id", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "payment", "777").Return(usecase.IngestStored)

		w := serve(r, http.MethodPost, "/v1/payments/webhook?type=payment&data.id=777&id=1", nil)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("json body", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "payment", "456").Return(usecase.IngestStored)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", jsonBody(`{"type":"payment","data":{"id":456}}`))
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("query topic with body id", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "payment", "99").Return(usecase.IngestStored)

		w := serve(r, http.MethodPost, "/v1/payments/webhook?topic=payment", jsonBody(`{"id":"99"}`))
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("malformed body is still acknowledged", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "", "").Return(usecase.IngestIgnored)

		w := serve(r, http.MethodPost, "/v1/payments/webhook", jsonBody(`{`))

		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "ignored", decode(t, w)["outcome"])
	})

	t.Run("provider failure is still acknowledged", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().IngestNotification(gomock.Any(), "payment", "5").Return(usecase.IngestProviderFailed)

		w := serve(r, http.MethodPost, "/v1/payments/webhook?topic=payment&id=5", nil)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestPaymentHandler_Backfill(t *testing.T) {
	rec := entities.PaymentRecord{
		PaymentID: "123", EntityID: "INS-1", Kind: entities.EntityKindInscription,
		Status: "approved", Amount: decimal.NewFromInt(20000), CreatedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("stored", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().FetchAndStore(gomock.Any(), "123").Return(rec, nil)

		w := serve(r, http.MethodPost, "/v1/payments/123/backfill", nil)

		expectStatus(t, w, http.StatusOK)
		body := decode(t, w)
		assert.Equal(t, "stored", body["status"])
		assert.Equal(t, "INS-1", body["payment"].(map[string]interface{})["entity_id"])
	})

	t.Run("already exists", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().FetchAndStore(gomock.Any(), "123").Return(rec, usecase.ErrPaymentAlreadyExists)

		w := serve(r, http.MethodPost, "/v1/payments/123/backfill", nil)

		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "already_exists", decode(t, w)["status"])
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{"not at provider", fmt.Errorf("%w: %w", usecase.ErrPaymentLookupFailed, interfaces.ErrPaymentNotFoundAtProvider), http.StatusNotFound},
		{"unclassified", usecase.ErrUnclassifiedPayment, http.StatusUnprocessableEntity},
		{"lookup failed", fmt.Errorf("%w: %w", usecase.ErrPaymentLookupFailed, errors.New("boom")), http.StatusBadGateway},
		{"write failed", usecase.ErrLedgerWriteFailed, http.StatusBadGateway},
		{"timeout", fmt.Errorf("%w: %w", usecase.ErrPaymentLookupFailed, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().FetchAndStore(gomock.Any(), "123").Return(entities.PaymentRecord{}, tc.err)

			w := serve(r, http.MethodPost, "/v1/payments/123/backfill", nil)
			expectStatus(t, w, tc.want)
		})
	}
}
