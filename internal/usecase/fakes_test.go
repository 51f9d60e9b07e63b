package usecase

import (
	"context"
	"sync"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"
)

// memoryLedger follows the conditional-write contract of the real ledger backends.
type memoryLedger struct {
	mu   sync.Mutex
	rows map[entities.EntityKind]map[string]entities.PaymentRecord
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{rows: map[entities.EntityKind]map[string]entities.PaymentRecord{}}
}

func (m *memoryLedger) table(kind entities.EntityKind) map[string]entities.PaymentRecord {
	t, ok := m.rows[kind]
	if !ok {
		t = map[string]entities.PaymentRecord{}
		m.rows[kind] = t
	}
	return t
}

func (m *memoryLedger) Upsert(_ context.Context, rec entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.table(rec.Kind)
	existing, ok := t[rec.PaymentID]
	if !ok {
		t[rec.PaymentID] = rec
		return nil
	}
	existing.Status = rec.Status
	existing.StatusDetail = rec.StatusDetail
	existing.Amount = rec.Amount
	existing.PayerEmail = rec.PayerEmail
	existing.UpdatedAt = rec.UpdatedAt
	t[rec.PaymentID] = existing
	return nil
}

func (m *memoryLedger) InsertIfAbsent(_ context.Context, rec entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.table(rec.Kind)
	if _, ok := t[rec.PaymentID]; ok {
		return interfaces.ErrPaymentAlreadyExists
	}
	t[rec.PaymentID] = rec
	return nil
}

func (m *memoryLedger) GetByPaymentID(_ context.Context, kind entities.EntityKind, paymentID string) (entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table(kind)[paymentID], nil
}

func (m *memoryLedger) ListByEntityID(_ context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.PaymentRecord
	for _, r := range m.table(kind) {
		if r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryLedger) ListByEntityIDs(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.PaymentRecord, error) {
	out := make(map[string][]entities.PaymentRecord, len(entityIDs))
	for _, id := range entityIDs {
		rows, _ := m.ListByEntityID(ctx, kind, id)
		if len(rows) > 0 {
			out[id] = rows
		}
	}
	return out, nil
}

func (m *memoryLedger) count(kind entities.EntityKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table(kind))
}

// staticGateway returns whatever payment is currently set for an id.
type staticGateway struct {
	mu       sync.Mutex
	payments map[string]entities.ProviderPayment
	calls    int
}

func (g *staticGateway) set(p entities.ProviderPayment) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.payments == nil {
		g.payments = map[string]entities.ProviderPayment{}
	}
	g.payments[p.ID] = p
}

func (g *staticGateway) GetPayment(_ context.Context, id string) (entities.ProviderPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	p, ok := g.payments[id]
	if !ok {
		return entities.ProviderPayment{}, interfaces.ErrPaymentNotFoundAtProvider
	}
	return p, nil
}

func (g *staticGateway) CreateCheckout(context.Context, interfaces.CheckoutRequest) (interfaces.Checkout, error) {
	return interfaces.Checkout{}, interfaces.ErrPaymentGatewayUnavailable
}
