package interfaces

import (
	"context"
	"errors"

	"caza_backend/internal/domain/entities"
)

var ErrPaymentAlreadyExists = errors.New("payment already exists")

// IPaymentLedgerRepository abstracts the per-kind payment tables.
//
// Upsert must use the storage's native conditional/on-conflict write so two
// concurrent deliveries of the same payment id never produce two rows.
type IPaymentLedgerRepository interface {
	// Upsert inserts rec or, when the payment id exists, overwrites status, status
	// detail, amount and payer email. The created timestamp keeps its first value.
	Upsert(ctx context.Context, rec entities.PaymentRecord) error
	// InsertIfAbsent inserts rec and returns ErrPaymentAlreadyExists when the id is taken.
	InsertIfAbsent(ctx context.Context, rec entities.PaymentRecord) error
	GetByPaymentID(ctx context.Context, kind entities.EntityKind, paymentID string) (entities.PaymentRecord, error)
	ListByEntityID(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error)
	// ListByEntityIDs returns the rows of every requested entity, keyed by entity id.
	ListByEntityIDs(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.PaymentRecord, error)
}
