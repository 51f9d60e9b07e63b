package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/infrastructure/metrics"
	"caza_backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type GatewayOptions struct {
	AccessToken     string
	CurrencyID      string
	MockMode        bool
	NotificationURL string
	BackURL         string
	BreakerFailures uint32
	BreakerOpenFor  time.Duration
}

type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	breaker     *gobreaker.CircuitBreaker
	opts        GatewayOptions
	mockMode    bool

	mu   sync.Mutex
	mock map[string]entities.ProviderPayment
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts GatewayOptions) (*MercadoPagoGateway, error) {
	if opts.CurrencyID == "" {
		opts.CurrencyID = "ARS"
	}
	if opts.MockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, opts: opts, mock: map[string]entities.ProviderPayment{}}, nil
	}

	if opts.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	return &MercadoPagoGateway{
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "mercadopago",
			MaxRequests: 1,
			Timeout:     opts.BreakerOpenFor,
			ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= failures },
		}),
		opts: opts,
	}, nil
}

// providerPayment is the subset of the SDK payment response the ledger needs.
type providerPayment struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	ExternalReference string          `json:"external_reference"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	DateCreated       string          `json:"date_created"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

type providerPreference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(paymentID)
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("%w: payment id %q", interfaces.ErrPaymentNotFoundAtProvider, paymentID)
	}
	log.Printf("[payment][gateway] get start payment_id=%d", id)

	out, err := g.call(ctx, "get_payment", func() (any, error) {
		return g.payments.Get(ctx, id)
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%d err=%v", id, err)
		return entities.ProviderPayment{}, classifyProviderError(err)
	}

	b, err := json.Marshal(out)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.ProviderPayment{}, err
	}
	var resp providerPayment
	if err := json.Unmarshal(b, &resp); err != nil {
		log.Printf("[payment][gateway] response decode failed err=%v", err)
		return entities.ProviderPayment{}, err
	}
	if resp.ID == 0 {
		return entities.ProviderPayment{}, interfaces.ErrPaymentNotFoundAtProvider
	}
	log.Printf("[payment][gateway] get success payment_id=%d status=%s", resp.ID, resp.Status)

	return entities.ProviderPayment{
		ID:                strconv.FormatInt(resp.ID, 10),
		ExternalReference: resp.ExternalReference,
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		Amount:            resp.TransactionAmount,
		PayerEmail:        resp.Payer.Email,
		DateCreated:       normalizeProviderTime(resp.DateCreated),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.Checkout, error) {
	if g != nil && g.mockMode {
		return g.mockCheckout(req), nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.Checkout{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start external_reference=%s", req.ExternalReference)

	payload := map[string]any{
		"items": []map[string]any{{
			"title":       req.Title,
			"quantity":    1,
			"unit_price":  req.Price.InexactFloat64(),
			"currency_id": g.opts.CurrencyID,
		}},
		"payer":              map[string]any{"email": req.PayerEmail},
		"external_reference": req.ExternalReference,
	}
	if g.opts.NotificationURL != "" {
		payload["notification_url"] = g.opts.NotificationURL
	}
	if g.opts.BackURL != "" {
		payload["back_urls"] = map[string]any{"success": g.opts.BackURL, "pending": g.opts.BackURL, "failure": g.opts.BackURL}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	var pr preference.Request
	if err := json.Unmarshal(b, &pr); err != nil {
		log.Printf("[payment][gateway] preference payload unmarshal failed err=%v", err)
		return interfaces.Checkout{}, err
	}

	out, err := g.call(ctx, "create_preference", func() (any, error) {
		return g.preferences.Create(ctx, pr)
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed err=%v", err)
		return interfaces.Checkout{}, classifyProviderError(err)
	}

	rb, err := json.Marshal(out)
	if err != nil {
		return interfaces.Checkout{}, err
	}
	var resp providerPreference
	if err := json.Unmarshal(rb, &resp); err != nil {
		return interfaces.Checkout{}, err
	}
	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)
	return interfaces.Checkout{CheckoutURL: url, PreferenceID: resp.ID}, nil
}

// call runs fn behind the circuit breaker and records provider metrics.
func (g *MercadoPagoGateway) call(ctx context.Context, operation string, fn func() (any, error)) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	var out any
	var err error
	if g.breaker == nil {
		out, err = fn()
	} else {
		out, err = g.breaker.Execute(fn)
	}
	metrics.ProviderLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	result := "ok"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "breaker_open"
	case err != nil:
		result = "error"
	}
	metrics.ProviderCalls.WithLabelValues(operation, result).Inc()
	return out, err
}

func classifyProviderError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentGatewayUnavailable, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found") {
		return fmt.Errorf("%w: %v", interfaces.ErrPaymentNotFoundAtProvider, err)
	}
	return fmt.Errorf("%w: %v", interfaces.ErrPaymentGatewayUnavailable, err)
}

// normalizeProviderTime drops the zero time the SDK marshals for absent dates.
func normalizeProviderTime(raw string) string {
	if raw == "" || strings.HasPrefix(raw, "0001-01-01") {
		return ""
	}
	return raw
}

// SeedMockPayment registers a payment returned by GetPayment in mock mode.
func (g *MercadoPagoGateway) SeedMockPayment(p entities.ProviderPayment) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mock[p.ID] = p
}

func (g *MercadoPagoGateway) mockGet(paymentID string) (entities.ProviderPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.mock[paymentID]
	if !ok {
		log.Printf("[payment][gateway] mock get miss payment_id=%s", paymentID)
		return entities.ProviderPayment{}, interfaces.ErrPaymentNotFoundAtProvider
	}
	log.Printf("[payment][gateway] mock get success payment_id=%s status=%s", paymentID, p.Status)
	return p, nil
}

// mockCheckout also registers an approved payment for the reference, so a
// webhook for the returned id can be replayed locally.
func (g *MercadoPagoGateway) mockCheckout(req interfaces.CheckoutRequest) interfaces.Checkout {
	now := time.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	g.SeedMockPayment(entities.ProviderPayment{
		ID:                id,
		ExternalReference: req.ExternalReference,
		Status:            entities.ProviderStatusApproved,
		StatusDetail:      "accredited",
		Amount:            req.Price,
		PayerEmail:        req.PayerEmail,
		DateCreated:       now.Format(time.RFC3339Nano),
	})
	log.Printf("[payment][gateway] mock preference created preference_id=mock-%s external_reference=%s", id, req.ExternalReference)
	return interfaces.Checkout{
		CheckoutURL:  "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=mock-" + id,
		PreferenceID: "mock-" + id,
	}
}
