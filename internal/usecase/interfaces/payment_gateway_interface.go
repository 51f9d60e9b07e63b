package interfaces

import (
	"context"
	"errors"

	"caza_backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFoundAtProvider = errors.New("payment not found at provider")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
)

// CheckoutRequest carries what the provider needs to build a checkout preference.
type CheckoutRequest struct {
	Title             string
	Price             decimal.Decimal
	ExternalReference string
	PayerEmail        string
}

type Checkout struct {
	CheckoutURL  string
	PreferenceID string
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
type IPaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (entities.ProviderPayment, error)
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
}
