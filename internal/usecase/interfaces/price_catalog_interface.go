package interfaces

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPriceNotFound = errors.New("price not found")
	ErrInvalidPrice  = errors.New("invalid price")
)

// IPriceCatalog resolves the fee for an entity category.
type IPriceCatalog interface {
	PriceFor(ctx context.Context, category string) (decimal.Decimal, error)
}
