package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const ProviderStatusApproved = "approved"

// PaymentRecord is one ledger row per distinct provider payment id.
//
// Storage model:
//   - one table per entity kind
//   - PK: payment_id
//   - secondary index on entity_id
//
// Status/StatusDetail follow the last processed notification; CreatedAt, Amount
// and PayerEmail are written once at insert.
type PaymentRecord struct {
	PaymentID    string          `json:"payment_id"`
	EntityID     string          `json:"entity_id"`
	Kind         EntityKind      `json:"kind"`
	Status       string          `json:"status"`
	StatusDetail string          `json:"status_detail"`
	Amount       decimal.Decimal `json:"amount"`
	PayerEmail   string          `json:"payer_email"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProviderPayment is the normalized view of a payment as reported by the provider.
type ProviderPayment struct {
	ID                string
	ExternalReference string
	Status            string
	StatusDetail      string
	Amount            decimal.Decimal
	PayerEmail        string
	// DateCreated is the provider's raw ISO8601 creation time, possibly empty.
	DateCreated string
}

// ResolveCreatedAt parses the provider's creation time. Values without a zone are
// taken as UTC; missing or unparsable values fall back to now.
func (p ProviderPayment) ResolveCreatedAt(now time.Time) time.Time {
	if p.DateCreated == "" {
		return now.UTC()
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000-0700", "2006-01-02T15:04:05-0700"} {
		if t, err := time.Parse(layout, p.DateCreated); err == nil {
			return t
		}
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, p.DateCreated, time.UTC); err == nil {
			return t
		}
	}
	return now.UTC()
}

// ToRecord builds the ledger row inserted for a first sighting of this payment.
func (p ProviderPayment) ToRecord(kind EntityKind, entityID string, now time.Time) PaymentRecord {
	return PaymentRecord{
		PaymentID:    p.ID,
		EntityID:     entityID,
		Kind:         kind,
		Status:       p.Status,
		StatusDetail: p.StatusDetail,
		Amount:       p.Amount,
		PayerEmail:   p.PayerEmail,
		CreatedAt:    p.ResolveCreatedAt(now),
		UpdatedAt:    now.UTC(),
	}
}
